package handlers

import (
	"encoding/json"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"net/http"
	"strconv"
	"ulascansenturk/weather-records/internal/db/observation"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusRequestEntityTooLarge:
		errorCode = "PAYLOAD_TOO_LARGE"
		title = "Payload Too Large"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondWithObservation(w http.ResponseWriter, obs *observation.Observation) {
	w.Header().Set(SchemaHeader, SchemaVersion)
	respondWithJSON(w, http.StatusOK, NewObservationV1(*obs))
}

// respondWithObservations answers 204 for an empty result.
func respondWithObservations(w http.ResponseWriter, observations []observation.Observation) {
	if len(observations) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	payload := make([]ObservationV1, 0, len(observations))
	for _, obs := range observations {
		payload = append(payload, NewObservationV1(obs))
	}

	w.Header().Set(SchemaHeader, SchemaVersion)
	respondWithJSON(w, http.StatusOK, payload)
}

func observationID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid observation id %q", raw)
	}
	return uint(id), nil
}

func intQueryParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("query parameter '%s' is required", name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter '%s' must be an integer", name)
	}
	return value, nil
}
