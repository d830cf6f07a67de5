package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"droscher.com/BeerReview/pkg/server/api"
)

var fullRating = api.RatingOptions{IncludeBeer: true, IncludeUser: true}

func (s *Server) listRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := s.services.Ratings.List(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.RatingList{Ratings: api.RatingsFromModel(ratings, fullRating)})
}

// createRating expects the author's username and the beer slug in the payload.
func (s *Server) createRating(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		s.writeError(w, err)

		return
	}

	rating, err := s.services.Ratings.Create(r.Context(), payload)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, api.RatingFromModel(rating, fullRating))
}

func (s *Server) getRating(w http.ResponseWriter, r *http.Request) {
	rating, err := s.services.Ratings.Get(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "beer"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.RatingDocument{Rating: api.RatingFromModel(rating, fullRating)})
}

func (s *Server) updateRating(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		s.writeError(w, err)

		return
	}

	rating, err := s.services.Ratings.Update(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "beer"), payload)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.RatingDocument{Rating: api.RatingFromModel(rating, fullRating)})
}

func (s *Server) deleteRating(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Ratings.Delete(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "beer")); err != nil {
		s.writeError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
