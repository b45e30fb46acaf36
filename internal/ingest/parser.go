package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"ulascansenturk/weather-records/internal/db/observation"
)

// FieldCount is the number of positional columns in an observation line.
const FieldCount = 20

// Column positions in an observation line.
const (
	colObservedAt = iota
	colConditions
	colDewPoint
	colFog
	colHail
	colHeatIndex
	colHumidity
	colPrecipitation
	colPressure
	colRain
	colSnow
	colTemperature
	colThunder
	colTornado
	colVisibility
	colWindDirectionDegrees
	colWindDirection
	colWindGust
	colWindChill
	colWindSpeed
)

var columnNames = [FieldCount]string{
	"datetime_utc", "_conds", "_dewptm", "_fog", "_hail", "_heatindexm", "_hum",
	"_precipm", "_pressurem", "_rain", "_snow", "_tempm", "_thunder", "_tornado",
	"_vism", "_wdird", "_wdire", "_wgustm", "_windchillm", "_wspdm",
}

// FieldError reports a column that could not be converted.
type FieldError struct {
	Column int
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("column %d (%s): invalid value %q: %v", e.Column, columnNames[e.Column], e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ParseLine maps one comma-separated line onto an Observation. Fields are split
// on every comma; quoted fields are not supported, so a comma inside a value
// shifts the remaining columns.
func ParseLine(line string) (observation.Observation, error) {
	fields := strings.Split(line, ",")
	if len(fields) < FieldCount {
		return observation.Observation{}, fmt.Errorf("line has %d fields, expected %d", len(fields), FieldCount)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	p := fieldParser{fields: fields}

	obs := observation.Observation{
		ObservedAt:           fields[colObservedAt],
		Conditions:           fields[colConditions],
		DewPoint:             p.integer(colDewPoint),
		Fog:                  p.integer(colFog),
		Hail:                 p.integer(colHail),
		HeatIndex:            fields[colHeatIndex],
		Humidity:             p.integer(colHumidity),
		Precipitation:        fields[colPrecipitation],
		Pressure:             p.wideInteger(colPressure),
		Rain:                 p.integer(colRain),
		Snow:                 p.integer(colSnow),
		Temperature:          p.integer(colTemperature),
		Thunder:              p.integer(colThunder),
		Tornado:              p.integer(colTornado),
		Visibility:           fields[colVisibility],
		WindDirectionDegrees: p.integer(colWindDirectionDegrees),
		WindDirection:        fields[colWindDirection],
		WindGust:             fields[colWindGust],
		WindChill:            fields[colWindChill],
		WindSpeed:            fields[colWindSpeed],
	}
	if p.err != nil {
		return observation.Observation{}, p.err
	}

	return obs, nil
}

// fieldParser keeps the first conversion error so ParseLine can build the
// record in a single expression.
type fieldParser struct {
	fields []string
	err    error
}

func (p *fieldParser) integer(col int) *int {
	if p.err != nil {
		return nil
	}
	v, err := strconv.Atoi(p.fields[col])
	if err != nil {
		p.err = &FieldError{Column: col, Value: p.fields[col], Err: err}
		return nil
	}
	return &v
}

func (p *fieldParser) wideInteger(col int) *int64 {
	if p.err != nil {
		return nil
	}
	v, err := strconv.ParseInt(p.fields[col], 10, 64)
	if err != nil {
		p.err = &FieldError{Column: col, Value: p.fields[col], Err: err}
		return nil
	}
	return &v
}
