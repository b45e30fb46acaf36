package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"ulascansenturk/weather-records/internal/db/observation"
	"ulascansenturk/weather-records/internal/ingest"
	"ulascansenturk/weather-records/internal/inmemorycache"

	"github.com/rs/zerolog/log"
)

var ErrReportNotFound = errors.New("ingestion report not found")

type ObservationService interface {
	Ingest(ctx context.Context, r io.Reader) (ingest.Report, error)
	GetReport(ctx context.Context, reportID string) (*ingest.Report, error)

	List(ctx context.Context) ([]observation.Observation, error)
	Get(ctx context.Context, id uint) (*observation.Observation, error)
	Update(ctx context.Context, id uint, obs observation.Observation) (*observation.Observation, error)
	Delete(ctx context.Context, id uint) error

	FilterByHumidity(ctx context.Context, humidity int) ([]observation.Observation, error)
	FilterByTemperature(ctx context.Context, temperature int) ([]observation.Observation, error)
	FilterByRain(ctx context.Context, rain int) ([]observation.Observation, error)
}

type observationService struct {
	repo      observation.Repository
	ingester  ingest.Ingester
	reports   inmemorycache.Cache
	reportTTL time.Duration
}

func NewObservationService(
	repo observation.Repository,
	ingester ingest.Ingester,
	reports inmemorycache.Cache,
	reportTTL time.Duration,
) ObservationService {
	return &observationService{
		repo:      repo,
		ingester:  ingester,
		reports:   reports,
		reportTTL: reportTTL,
	}
}

func (s *observationService) Ingest(ctx context.Context, r io.Reader) (ingest.Report, error) {
	report, err := s.ingester.Ingest(ctx, r)

	// aborted runs are cached as well so the stored count stays retrievable
	if cacheErr := s.reports.Set(report.ID, &report, s.reportTTL); cacheErr != nil {
		log.Error().Err(cacheErr).Str("report_id", report.ID).Msg("failed to cache ingestion report")
	}

	return report, err
}

func (s *observationService) GetReport(_ context.Context, reportID string) (*ingest.Report, error) {
	report, found, err := s.reports.Get(reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingestion report: %w", err)
	}
	if !found {
		return nil, ErrReportNotFound
	}
	return report, nil
}

func (s *observationService) List(ctx context.Context) ([]observation.Observation, error) {
	return s.repo.FindAll(ctx)
}

func (s *observationService) Get(ctx context.Context, id uint) (*observation.Observation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *observationService) Update(ctx context.Context, id uint, obs observation.Observation) (*observation.Observation, error) {
	if err := s.repo.Update(ctx, id, obs); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *observationService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *observationService) FilterByHumidity(ctx context.Context, humidity int) ([]observation.Observation, error) {
	return s.repo.FindByHumidityAbove(ctx, humidity)
}

func (s *observationService) FilterByTemperature(ctx context.Context, temperature int) ([]observation.Observation, error) {
	return s.repo.FindByTemperatureAtLeast(ctx, temperature)
}

func (s *observationService) FilterByRain(ctx context.Context, rain int) ([]observation.Observation, error) {
	return s.repo.FindByRain(ctx, rain)
}
