package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"droscher.com/BeerReview/pkg/server/api"
)

func (s *Server) listGlasses(w http.ResponseWriter, r *http.Request) {
	glasses, err := s.services.Glasses.List(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.GlassesFromModel(glasses))
}

func (s *Server) createGlass(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		s.writeError(w, err)

		return
	}

	glass, err := s.services.Glasses.Create(r.Context(), payload)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, api.GlassFromModel(glass))
}

func (s *Server) getGlass(w http.ResponseWriter, r *http.Request) {
	glass, err := s.services.Glasses.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.GlassFromModel(glass))
}

func (s *Server) updateGlass(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		s.writeError(w, err)

		return
	}

	glass, err := s.services.Glasses.Update(r.Context(), chi.URLParam(r, "slug"), payload)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.GlassFromModel(glass))
}

// deleteGlass fails with a conflict while beers still use the glass.
func (s *Server) deleteGlass(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Glasses.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		s.writeError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
