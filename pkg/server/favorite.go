package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"droscher.com/BeerReview/pkg/server/api"
)

func (s *Server) listFavorites(w http.ResponseWriter, r *http.Request) {
	beers, err := s.services.Favorites.List(r.Context(), chi.URLParam(r, "username"), r.URL.Query().Get("sort"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.BeersFromModel(beers))
}

func (s *Server) addFavorite(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Favorites.Add(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "beer")); err != nil {
		s.writeError(w, err)

		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s *Server) removeFavorite(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Favorites.Remove(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "beer")); err != nil {
		s.writeError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
