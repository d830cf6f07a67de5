package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"droscher.com/BeerReview/pkg/server/api"
)

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.services.Users.List(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.UsersFromModel(users))
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		s.writeError(w, err)

		return
	}

	user, err := s.services.Users.Create(r.Context(), payload)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, api.UserFromModel(user, nil))
}

// getUser embeds the user's ratings.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := s.services.Users.Get(r.Context(), username)
	if err != nil {
		s.writeError(w, err)

		return
	}

	ratings, err := s.services.Users.Ratings(r.Context(), username, "")
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.UserFromModel(user, ratings))
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		s.writeError(w, err)

		return
	}

	user, err := s.services.Users.Update(r.Context(), chi.URLParam(r, "username"), payload)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.UserFromModel(user, nil))
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Users.Delete(r.Context(), chi.URLParam(r, "username")); err != nil {
		s.writeError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listUserRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := s.services.Users.Ratings(r.Context(), chi.URLParam(r, "username"), r.URL.Query().Get("sort"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, api.RatingList{Ratings: api.RatingsFromModel(ratings, api.RatingOptions{IncludeBeer: true})})
}
