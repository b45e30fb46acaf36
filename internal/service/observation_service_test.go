package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"ulascansenturk/weather-records/internal/db/observation"
	"ulascansenturk/weather-records/internal/ingest"
	"ulascansenturk/weather-records/internal/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-records/internal/service"
)

const reportTTL = 30 * time.Minute

func intPtr(v int) *int { return &v }

type ObservationServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.MockRepository
	mockIngester *mocks.MockIngester
	mockCache    *mocks.MockCache
	service      service.ObservationService
	ctx          context.Context
}

func (s *ObservationServiceTestSuite) SetupTest() {
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.mockIngester = mocks.NewMockIngester(s.T())
	s.mockCache = mocks.NewMockCache(s.T())
	s.service = service.NewObservationService(s.mockRepo, s.mockIngester, s.mockCache, reportTTL)
	s.ctx = context.Background()
}

func (s *ObservationServiceTestSuite) TestIngestCachesReport() {
	input := strings.NewReader("header\n")
	report := ingest.Report{ID: "report-1", Stored: 4, Failures: []ingest.LineFailure{}}

	s.mockIngester.On("Ingest", mock.Anything, input).Return(report, nil)
	s.mockCache.On("Set", "report-1", &report, reportTTL).Return(nil)

	result, err := s.service.Ingest(s.ctx, input)

	s.NoError(err)
	s.Equal(report, result)
}

func (s *ObservationServiceTestSuite) TestIngestCachesAbortedReport() {
	input := strings.NewReader("header\n")
	report := ingest.Report{ID: "report-2", Stored: 1, Failures: []ingest.LineFailure{}}
	ingestErr := errors.Join(ingest.ErrStream, errors.New("connection reset"))

	s.mockIngester.On("Ingest", mock.Anything, input).Return(report, ingestErr)
	s.mockCache.On("Set", "report-2", mock.Anything, reportTTL).Return(nil)

	result, err := s.service.Ingest(s.ctx, input)

	s.ErrorIs(err, ingest.ErrStream)
	s.Equal(1, result.Stored)
}

func (s *ObservationServiceTestSuite) TestIngestIgnoresCacheFailure() {
	input := strings.NewReader("")
	report := ingest.Report{ID: "report-3", Failures: []ingest.LineFailure{}}

	s.mockIngester.On("Ingest", mock.Anything, input).Return(report, nil)
	s.mockCache.On("Set", "report-3", mock.Anything, reportTTL).Return(errors.New("marshal failure"))

	result, err := s.service.Ingest(s.ctx, input)

	s.NoError(err)
	s.Equal("report-3", result.ID)
}

func (s *ObservationServiceTestSuite) TestGetReport() {
	report := &ingest.Report{ID: "report-4", Stored: 2}
	s.mockCache.On("Get", "report-4").Return(report, true, nil)

	result, err := s.service.GetReport(s.ctx, "report-4")

	s.NoError(err)
	s.Equal(report, result)
}

func (s *ObservationServiceTestSuite) TestGetReportNotFound() {
	s.mockCache.On("Get", "missing").Return(nil, false, nil)

	result, err := s.service.GetReport(s.ctx, "missing")

	s.ErrorIs(err, service.ErrReportNotFound)
	s.Nil(result)
}

func (s *ObservationServiceTestSuite) TestGetReportCacheError() {
	s.mockCache.On("Get", "broken").Return(nil, false, errors.New("unexpected end of JSON input"))

	result, err := s.service.GetReport(s.ctx, "broken")

	s.Error(err)
	s.NotErrorIs(err, service.ErrReportNotFound)
	s.Nil(result)
}

func (s *ObservationServiceTestSuite) TestList() {
	observations := []observation.Observation{{ID: 1}, {ID: 2}}
	s.mockRepo.On("FindAll", mock.Anything).Return(observations, nil)

	result, err := s.service.List(s.ctx)

	s.NoError(err)
	s.Equal(observations, result)
}

func (s *ObservationServiceTestSuite) TestGetPropagatesNotFound() {
	s.mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, observation.ErrNotFound)

	result, err := s.service.Get(s.ctx, 9)

	s.ErrorIs(err, observation.ErrNotFound)
	s.Nil(result)
}

func (s *ObservationServiceTestSuite) TestUpdateReadsBackRecord() {
	update := observation.Observation{Conditions: "Fog", Humidity: intPtr(98), Fog: intPtr(1)}
	stored := update
	stored.ID = 3

	s.mockRepo.On("Update", mock.Anything, uint(3), update).Return(nil)
	s.mockRepo.On("FindByID", mock.Anything, uint(3)).Return(&stored, nil)

	result, err := s.service.Update(s.ctx, 3, update)

	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal(uint(3), result.ID)
	s.Equal("Fog", result.Conditions)
	s.Equal(98, *result.Humidity)
}

func (s *ObservationServiceTestSuite) TestUpdateMissingRecord() {
	update := observation.Observation{Conditions: "Fog"}
	s.mockRepo.On("Update", mock.Anything, uint(404), update).Return(observation.ErrNotFound)

	result, err := s.service.Update(s.ctx, 404, update)

	s.ErrorIs(err, observation.ErrNotFound)
	s.Nil(result)
	s.mockRepo.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
}

func (s *ObservationServiceTestSuite) TestDelete() {
	s.mockRepo.On("Delete", mock.Anything, uint(5)).Return(nil)
	s.mockRepo.On("Delete", mock.Anything, uint(6)).Return(observation.ErrNotFound)

	s.NoError(s.service.Delete(s.ctx, 5))
	s.ErrorIs(s.service.Delete(s.ctx, 6), observation.ErrNotFound)
}

func (s *ObservationServiceTestSuite) TestFiltersDelegateToStorePredicates() {
	humid := []observation.Observation{{ID: 1, Humidity: intPtr(90)}}
	warm := []observation.Observation{{ID: 2, Temperature: intPtr(30)}}
	rainy := []observation.Observation{{ID: 3, Rain: intPtr(1)}}

	s.mockRepo.On("FindByHumidityAbove", mock.Anything, 80).Return(humid, nil)
	s.mockRepo.On("FindByTemperatureAtLeast", mock.Anything, 30).Return(warm, nil)
	s.mockRepo.On("FindByRain", mock.Anything, 1).Return(rainy, nil)

	result, err := s.service.FilterByHumidity(s.ctx, 80)
	s.NoError(err)
	s.Equal(humid, result)

	result, err = s.service.FilterByTemperature(s.ctx, 30)
	s.NoError(err)
	s.Equal(warm, result)

	result, err = s.service.FilterByRain(s.ctx, 1)
	s.NoError(err)
	s.Equal(rainy, result)
}

func (s *ObservationServiceTestSuite) TestFilterStoreError() {
	s.mockRepo.On("FindByRain", mock.Anything, 0).Return(nil, errors.New("connection refused"))

	result, err := s.service.FilterByRain(s.ctx, 0)

	s.Error(err)
	s.Nil(result)
}

func TestObservationServiceSuite(t *testing.T) {
	suite.Run(t, new(ObservationServiceTestSuite))
}
