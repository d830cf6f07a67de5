package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/server/api"
	"droscher.com/BeerReview/pkg/validation"
)

var statusByKind = map[errs.Kind]int{
	errs.KindNotFound:    http.StatusNotFound,
	errs.KindValidation:  http.StatusBadRequest,
	errs.KindConflict:    http.StatusConflict,
	errs.KindRateLimited: http.StatusUnprocessableEntity,
	errs.KindInternal:    http.StatusInternalServerError,
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	kind := errs.KindOf(err)

	status, found := statusByKind[kind]
	if !found {
		status = http.StatusInternalServerError
	}

	body := map[string]any{"kind": string(kind)}

	var appErr *errs.Error
	if !errors.As(err, &appErr) {
		s.logger.Error("unclassified error", zap.Error(err))
		body["kind"] = string(errs.KindInternal)
		body["error"] = "internal error"
		s.writeJSON(w, status, body)

		return
	}

	body["error"] = appErr.Error()

	if appErr.Field != "" {
		body["field"] = appErr.Field
	}

	switch entity := appErr.Context.(type) {
	case *model.Beer:
		body["beer"] = api.BeerFromModel(entity)
	case *model.Rating:
		body["rating"] = api.RatingFromModel(entity, api.RatingOptions{IncludeBeer: true})
	case map[string]int64:
		for key, value := range entity {
			body[key] = value
		}
	}

	s.writeJSON(w, status, body)
}

// decodePayload reads a JSON object body. Numbers stay json.Number so the
// validators can tell integers from fractions.
func decodePayload(r *http.Request) (validation.Payload, error) {
	payload := validation.Payload{}

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	if err := decoder.Decode(&payload); err != nil {
		return nil, errs.Validation("body", "malformed JSON body")
	}

	return payload, nil
}
