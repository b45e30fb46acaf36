package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-records/internal/db/observation"
	"ulascansenturk/weather-records/internal/service"
)

const maxUpdateBodySize = 1 << 20

type ObservationHandler struct {
	observationService service.ObservationService
	timeout            time.Duration
	maxUploadSize      int64
}

func NewObservationHandler(observationService service.ObservationService, timeout time.Duration, maxUploadSize int64) *ObservationHandler {
	return &ObservationHandler{
		observationService: observationService,
		timeout:            timeout,
		maxUploadSize:      maxUploadSize,
	}
}

func (h *ObservationHandler) Health(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Weather records service is running",
	})
}

func (h *ObservationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	observations, err := h.observationService.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list observations")
		respondWithError(w, http.StatusInternalServerError, "failed to list observations: "+err.Error())
		return
	}

	respondWithObservations(w, observations)
}

// GetByID answers 204, not 404, for an unknown id.
func (h *ObservationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := observationID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	obs, err := h.observationService.Get(ctx, id)
	if errors.Is(err, observation.ErrNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("failed to get observation")
		respondWithError(w, http.StatusInternalServerError, "failed to get observation: "+err.Error())
		return
	}

	respondWithObservation(w, obs)
}

func (h *ObservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := observationID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload ObservationV1
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid observation body: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	updated, err := h.observationService.Update(ctx, id, payload.Model())
	if errors.Is(err, observation.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("observation %d not found", id))
		return
	}
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("failed to update observation")
		respondWithError(w, http.StatusInternalServerError, "failed to update observation: "+err.Error())
		return
	}

	respondWithObservation(w, updated)
}

func (h *ObservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := observationID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	err = h.observationService.Delete(ctx, id)
	if errors.Is(err, observation.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("observation %d not found", id))
		return
	}
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("failed to delete observation")
		respondWithError(w, http.StatusInternalServerError, "failed to delete observation: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Deleted successfully"})
}

func (h *ObservationHandler) FilterByHumidity(w http.ResponseWriter, r *http.Request) {
	h.filter(w, r, "hum", h.observationService.FilterByHumidity)
}

func (h *ObservationHandler) FilterByTemperature(w http.ResponseWriter, r *http.Request) {
	h.filter(w, r, "temp", h.observationService.FilterByTemperature)
}

func (h *ObservationHandler) FilterByRain(w http.ResponseWriter, r *http.Request) {
	h.filter(w, r, "rain", h.observationService.FilterByRain)
}

func (h *ObservationHandler) filter(
	w http.ResponseWriter,
	r *http.Request,
	param string,
	find func(context.Context, int) ([]observation.Observation, error),
) {
	threshold, err := intQueryParam(r, param)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	observations, err := find(ctx, threshold)
	if err != nil {
		log.Error().Err(err).Str("param", param).Int("value", threshold).Msg("failed to filter observations")
		respondWithError(w, http.StatusInternalServerError, "failed to filter observations: "+err.Error())
		return
	}

	respondWithObservations(w, observations)
}
