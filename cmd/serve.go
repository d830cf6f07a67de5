package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"droscher.com/BeerReview/configs"
	"droscher.com/BeerReview/pkg/integrations"
	"droscher.com/BeerReview/pkg/metrics"
	"droscher.com/BeerReview/pkg/repository"
	"droscher.com/BeerReview/pkg/server"
	"droscher.com/BeerReview/pkg/service"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".BeerReview.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliContext *Context) error {
	logger := newLogger(cliContext.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	m := metrics.New(prometheus.DefaultRegisterer)

	services := service.New(repo, logger, service.WithRules(conf.Rules), service.WithMetrics(m))

	lookup, err := newLookup(conf, m, logger)
	if err != nil {
		logger.Error("error configuring integrations", zap.Error(err))

		return err
	}

	mux := http.NewServeMux()
	server.New(services, lookup, m, prometheus.DefaultGatherer, logger).Mount(mux)

	// Configure CORS first
	corsHandler := configureCORS(mux)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting server", zap.String("address", svr.Addr))

		if err := svr.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", zap.Error(err))

			return err
		}

		return nil
	})

	group.Go(func() error {
		<-ctx.Done()

		shutdownContext, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")

		return svr.Shutdown(shutdownContext)
	})

	return group.Wait()
}

func newLookup(conf *configs.Config, m *metrics.Metrics, logger *zap.Logger) (*service.LookupService, error) {
	sources := make(map[string]integrations.Integration, len(conf.Integrations.Beer))

	for _, name := range conf.Integrations.Beer {
		integration, err := integrations.GetIntegration(name, conf.Integrations, logger)
		if err != nil {
			return nil, err
		}

		sources[name] = integration
	}

	return service.NewLookupService(sources, conf.Integrations.Beer, m, logger), nil
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"custom-header-1",
			"date",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"grpc-timeout",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
			"x-accept-content-transfer-encoding",
			"x-accept-response-streaming",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false, // Handle OPTIONS requests in CORS middleware
	})

	// Apply CORS to the main mux, then wrap with h2c
	corsHandler := corsOpts.Handler(mux)

	return corsHandler
}
