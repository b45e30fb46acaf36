package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-records/internal/service"
)

const uploadFormField = "file"

func (h *ObservationHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", h.maxUploadSize))
			return
		}
		respondWithError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "form field 'file' is required")
		return
	}
	defer file.Close()

	if header.Size == 0 {
		respondWithError(w, http.StatusBadRequest, "Please select a file to upload")
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		respondWithError(w, http.StatusBadRequest, "Please upload a CSV file")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	report, err := h.observationService.Ingest(ctx, file)
	if err != nil {
		log.Error().Err(err).
			Str("report_id", report.ID).
			Str("filename", header.Filename).
			Int("stored", report.Stored).
			Msg("failed to process upload")
		respondWithError(w, http.StatusInternalServerError,
			fmt.Sprintf("Error processing the file (report %s, %d records stored): %v", report.ID, report.Stored, err))
		return
	}

	respondWithJSON(w, http.StatusOK, NewUploadResponse(report))
}

func (h *ObservationHandler) GetUploadReport(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportID")

	report, err := h.observationService.GetReport(r.Context(), reportID)
	if errors.Is(err, service.ErrReportNotFound) {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("report %s not found", reportID))
		return
	}
	if err != nil {
		log.Error().Err(err).Str("report_id", reportID).Msg("failed to get ingestion report")
		respondWithError(w, http.StatusInternalServerError, "failed to get ingestion report: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, NewUploadResponse(*report))
}
