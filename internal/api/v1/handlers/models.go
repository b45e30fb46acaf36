package handlers

import (
	"time"
	"ulascansenturk/weather-records/internal/db/observation"
	"ulascansenturk/weather-records/internal/ingest"
)

const (
	SchemaHeader  = "X-Observation-Schema"
	SchemaVersion = "v1"
)

// ObservationV1 is the wire format of an observation. Integer readings are
// always present and encode an unset value as null; text readings are always
// present and may be empty.
type ObservationV1 struct {
	ID                   uint   `json:"id"`
	ObservedAt           string `json:"observed_at"`
	Conditions           string `json:"conditions"`
	DewPointC            *int   `json:"dew_point_c"`
	Fog                  *int   `json:"fog"`
	Hail                 *int   `json:"hail"`
	HeatIndexC           string `json:"heat_index_c"`
	HumidityPct          *int   `json:"humidity_pct"`
	PrecipitationMM      string `json:"precipitation_mm"`
	PressureMB           *int64 `json:"pressure_mb"`
	Rain                 *int   `json:"rain"`
	Snow                 *int   `json:"snow"`
	TemperatureC         *int   `json:"temperature_c"`
	Thunder              *int   `json:"thunder"`
	Tornado              *int   `json:"tornado"`
	VisibilityKM         string `json:"visibility_km"`
	WindDirectionDegrees *int   `json:"wind_direction_deg"`
	WindDirection        string `json:"wind_direction"`
	WindGustKMH          string `json:"wind_gust_kmh"`
	WindChillC           string `json:"wind_chill_c"`
	WindSpeedKMH         string `json:"wind_speed_kmh"`
}

func NewObservationV1(obs observation.Observation) ObservationV1 {
	return ObservationV1{
		ID:                   obs.ID,
		ObservedAt:           obs.ObservedAt,
		Conditions:           obs.Conditions,
		DewPointC:            obs.DewPoint,
		Fog:                  obs.Fog,
		Hail:                 obs.Hail,
		HeatIndexC:           obs.HeatIndex,
		HumidityPct:          obs.Humidity,
		PrecipitationMM:      obs.Precipitation,
		PressureMB:           obs.Pressure,
		Rain:                 obs.Rain,
		Snow:                 obs.Snow,
		TemperatureC:         obs.Temperature,
		Thunder:              obs.Thunder,
		Tornado:              obs.Tornado,
		VisibilityKM:         obs.Visibility,
		WindDirectionDegrees: obs.WindDirectionDegrees,
		WindDirection:        obs.WindDirection,
		WindGustKMH:          obs.WindGust,
		WindChillC:           obs.WindChill,
		WindSpeedKMH:         obs.WindSpeed,
	}
}

// Model converts the payload into a store record. The id is never taken from
// the payload.
func (p ObservationV1) Model() observation.Observation {
	return observation.Observation{
		ObservedAt:           p.ObservedAt,
		Conditions:           p.Conditions,
		DewPoint:             p.DewPointC,
		Fog:                  p.Fog,
		Hail:                 p.Hail,
		HeatIndex:            p.HeatIndexC,
		Humidity:             p.HumidityPct,
		Precipitation:        p.PrecipitationMM,
		Pressure:             p.PressureMB,
		Rain:                 p.Rain,
		Snow:                 p.Snow,
		Temperature:          p.TemperatureC,
		Thunder:              p.Thunder,
		Tornado:              p.Tornado,
		Visibility:           p.VisibilityKM,
		WindDirectionDegrees: p.WindDirectionDegrees,
		WindDirection:        p.WindDirection,
		WindGust:             p.WindGustKMH,
		WindChill:            p.WindChillC,
		WindSpeed:            p.WindSpeedKMH,
	}
}

type LineFailure struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

type UploadResponse struct {
	ReportID   string        `json:"report_id"`
	Stored     int           `json:"stored"`
	Rejected   int           `json:"rejected"`
	Message    string        `json:"message"`
	Failures   []LineFailure `json:"failures"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

func NewUploadResponse(report ingest.Report) UploadResponse {
	failures := make([]LineFailure, 0, len(report.Failures))
	for _, f := range report.Failures {
		failures = append(failures, LineFailure{Line: f.Line, Error: f.Error})
	}

	return UploadResponse{
		ReportID:   report.ID,
		Stored:     report.Stored,
		Rejected:   report.Rejected(),
		Message:    report.Message(),
		Failures:   failures,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
