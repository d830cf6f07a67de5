// Package server exposes the review services over a JSON HTTP API.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"droscher.com/BeerReview/pkg/metrics"
	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/service"
)

// BeerFinder searches external catalogues for beers.
type BeerFinder interface {
	FindBeer(ctx context.Context, query string) ([]model.BeerCandidate, error)
}

type Server struct {
	services *service.Services
	lookup   BeerFinder
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	logger   *zap.Logger
}

func New(services *service.Services, lookup BeerFinder, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	return &Server{services: services, lookup: lookup, metrics: m, gatherer: gatherer, logger: logger}
}

func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(s.observe)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.Post("/", s.createUser)
		r.Route("/{username}", func(r chi.Router) {
			r.Get("/", s.getUser)
			r.Put("/", s.updateUser)
			r.Delete("/", s.deleteUser)
			r.Get("/ratings", s.listUserRatings)
			r.Get("/ratings/{beer}", s.getRating)
			r.Put("/ratings/{beer}", s.updateRating)
			r.Delete("/ratings/{beer}", s.deleteRating)
			r.Get("/favorites", s.listFavorites)
			r.Put("/favorites/{beer}", s.addFavorite)
			r.Delete("/favorites/{beer}", s.removeFavorite)
		})
	})

	router.Route("/beers", func(r chi.Router) {
		r.Get("/", s.listBeers)
		r.Post("/", s.createBeer)
		r.Get("/{slug}", s.getBeer)
		r.Put("/{slug}", s.updateBeer)
		r.Delete("/{slug}", s.deleteBeer)
		r.Get("/{slug}/ratings", s.listBeerRatings)
	})

	router.Route("/glasses", func(r chi.Router) {
		r.Get("/", s.listGlasses)
		r.Post("/", s.createGlass)
		r.Get("/{slug}", s.getGlass)
		r.Put("/{slug}", s.updateGlass)
		r.Delete("/{slug}", s.deleteGlass)
	})

	router.Route("/ratings", func(r chi.Router) {
		r.Get("/", s.listRatings)
		r.Post("/", s.createRating)
	})

	router.Get("/search/beers", s.searchBeers)

	if s.gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return router
}

// observe logs every request and records its duration by route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if routeContext := chi.RouteContext(r.Context()); routeContext != nil && routeContext.RoutePattern() != "" {
			route = routeContext.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		elapsed := time.Since(start)
		s.metrics.ObserveRequest(r.Method, route, strconv.Itoa(status), elapsed)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
