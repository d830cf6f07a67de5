package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"droscher.com/BeerReview/pkg/server/api"
)

func (s *Server) listBeers(w http.ResponseWriter, r *http.Request) {
	beers, err := s.services.Beers.List(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.BeersFromModel(beers))
}

// createBeer expects the author's username in the payload.
func (s *Server) createBeer(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		s.writeError(w, err)

		return
	}

	beer, err := s.services.Beers.Create(r.Context(), payload)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, api.BeerFromModel(beer))
}

func (s *Server) getBeer(w http.ResponseWriter, r *http.Request) {
	beer, err := s.services.Beers.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.BeerFromModel(beer))
}

func (s *Server) updateBeer(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		s.writeError(w, err)

		return
	}

	beer, err := s.services.Beers.Update(r.Context(), chi.URLParam(r, "slug"), payload)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.BeerFromModel(beer))
}

func (s *Server) deleteBeer(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Beers.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		s.writeError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listBeerRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := s.services.Beers.Ratings(r.Context(), chi.URLParam(r, "slug"), r.URL.Query().Get("sort"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.RatingList{Ratings: api.RatingsFromModel(ratings, api.RatingOptions{IncludeUser: true})})
}
