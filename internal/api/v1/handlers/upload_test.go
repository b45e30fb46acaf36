package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"
	"ulascansenturk/weather-records/internal/api/v1/handlers"
	"ulascansenturk/weather-records/internal/ingest"
	"ulascansenturk/weather-records/internal/observability"
	"ulascansenturk/weather-records/internal/service"

	"github.com/stretchr/testify/mock"
)

func newUploadRequest(field, filename, content string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile(field, filename)
	_, _ = io.WriteString(part, content)
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func (s *ObservationHandlerTestSuite) TestUpload() {
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	report := ingest.Report{
		ID:         "5f0c6b1e-report",
		Stored:     2,
		Failures:   []ingest.LineFailure{{Line: 3, Error: "line has 4 fields, expected 20"}},
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}

	s.mockService.On("Ingest", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			content, err := io.ReadAll(args.Get(1).(io.Reader))
			s.NoError(err)
			s.Equal("header\nrow\n", string(content))
		}).
		Return(report, nil)

	recorder := s.serve(newUploadRequest("file", "weather.csv", "header\nrow\n"))

	s.Equal(http.StatusOK, recorder.Code)

	var response handlers.UploadResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal("5f0c6b1e-report", response.ReportID)
	s.Equal(2, response.Stored)
	s.Equal(1, response.Rejected)
	s.Equal("File processed with errors: 2 records stored, 1 lines skipped", response.Message)
	s.Equal([]handlers.LineFailure{{Line: 3, Error: "line has 4 fields, expected 20"}}, response.Failures)
}

func (s *ObservationHandlerTestSuite) TestUploadExtensionIsCaseInsensitive() {
	s.mockService.On("Ingest", mock.Anything, mock.Anything).
		Return(ingest.Report{ID: "r", Stored: 1, Failures: []ingest.LineFailure{}}, nil)

	recorder := s.serve(newUploadRequest("file", "WEATHER.CSV", "header\nrow\n"))

	s.Equal(http.StatusOK, recorder.Code)

	var response handlers.UploadResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal("File processed successfully: 1 records stored", response.Message)
	s.NotNil(response.Failures)
	s.Empty(response.Failures)
}

func (s *ObservationHandlerTestSuite) TestUploadRejectsInvalidFiles() {
	cases := []struct {
		name   string
		req    *http.Request
		detail string
	}{
		{"missing field", newUploadRequest("attachment", "weather.csv", "row\n"), "form field 'file' is required"},
		{"empty file", newUploadRequest("file", "weather.csv", ""), "Please select a file to upload"},
		{"wrong extension", newUploadRequest("file", "weather.txt", "row\n"), "Please upload a CSV file"},
		{"no extension", newUploadRequest("file", "csv", "row\n"), "Please upload a CSV file"},
		{"not multipart", httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("row\n")), "invalid multipart form"},
	}

	for _, tc := range cases {
		recorder := s.serve(tc.req)

		s.Equal(http.StatusBadRequest, recorder.Code, tc.name)
		s.Contains(s.decodeError(recorder).Detail, tc.detail, tc.name)
	}

	s.mockService.AssertNotCalled(s.T(), "Ingest", mock.Anything, mock.Anything)
}

func (s *ObservationHandlerTestSuite) TestUploadTooLarge() {
	handler := handlers.NewObservationHandler(s.mockService, 5*time.Second, 256)
	router := handlers.NewRouter(handler, observability.NewMetricsForTesting())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newUploadRequest("file", "weather.csv", strings.Repeat("x", 1024)))

	s.Equal(http.StatusRequestEntityTooLarge, recorder.Code)
	s.Equal("PAYLOAD_TOO_LARGE", s.decodeError(recorder).Code)
}

func (s *ObservationHandlerTestSuite) TestUploadIngestionFailure() {
	report := ingest.Report{ID: "aborted", Stored: 3, Failures: []ingest.LineFailure{}}
	ingestErr := fmt.Errorf("%w: line 5: %w", ingest.ErrStore, fmt.Errorf("connection reset"))

	s.mockService.On("Ingest", mock.Anything, mock.Anything).Return(report, ingestErr)

	recorder := s.serve(newUploadRequest("file", "weather.csv", "header\nrow\n"))

	s.Equal(http.StatusInternalServerError, recorder.Code)
	apiErr := s.decodeError(recorder)
	s.Equal("INTERNAL_ERROR", apiErr.Code)
	s.Contains(apiErr.Detail, "Error processing the file")
	s.Contains(apiErr.Detail, "aborted")
	s.Contains(apiErr.Detail, "3 records stored")
	s.Contains(apiErr.Detail, "connection reset")
}

func (s *ObservationHandlerTestSuite) TestGetUploadReport() {
	report := &ingest.Report{ID: "abc", Stored: 4, Failures: []ingest.LineFailure{}}
	s.mockService.On("GetReport", mock.Anything, "abc").Return(report, nil)

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/upload/abc", nil))

	s.Equal(http.StatusOK, recorder.Code)

	var response handlers.UploadResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal("abc", response.ReportID)
	s.Equal(4, response.Stored)
}

func (s *ObservationHandlerTestSuite) TestGetUploadReportNotFound() {
	s.mockService.On("GetReport", mock.Anything, "gone").Return(nil, service.ErrReportNotFound)

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/upload/gone", nil))

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Equal("NOT_FOUND", s.decodeError(recorder).Code)
}

func (s *ObservationHandlerTestSuite) TestGetUploadReportCacheError() {
	s.mockService.On("GetReport", mock.Anything, "corrupt").Return(nil, fmt.Errorf("failed to read ingestion report: bad json"))

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/upload/corrupt", nil))

	s.Equal(http.StatusInternalServerError, recorder.Code)
}
