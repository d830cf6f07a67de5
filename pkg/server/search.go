package server

import (
	"net/http"

	"droscher.com/BeerReview/pkg/server/api"
)

func (s *Server) searchBeers(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.lookup.FindBeer(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.CandidatesFromModel(candidates))
}
