package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"ulascansenturk/weather-records/internal/db/observation"
	"ulascansenturk/weather-records/internal/observability"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// contextCheckInterval is how many lines are read between cancellation checks.
const contextCheckInterval = 100

var (
	ErrStream = errors.New("failed to read upload stream")
	ErrStore  = errors.New("failed to store observation")
)

type Ingester interface {
	Ingest(ctx context.Context, r io.Reader) (Report, error)
}

type csvIngester struct {
	repo       observation.Repository
	skipHeader bool
	clock      clockwork.Clock
	metrics    *observability.Metrics
}

func NewCSVIngester(
	repo observation.Repository,
	skipHeader bool,
	clock clockwork.Clock,
	metrics *observability.Metrics,
) Ingester {
	return &csvIngester{
		repo:       repo,
		skipHeader: skipHeader,
		clock:      clock,
		metrics:    metrics,
	}
}

// Ingest stores every well-formed line of r. Malformed lines are recorded in
// the report and skipped; a read or store failure aborts the run, leaving the
// lines stored so far in place.
func (i *csvIngester) Ingest(ctx context.Context, r io.Reader) (Report, error) {
	report := Report{
		ID:        uuid.NewString(),
		Failures:  []LineFailure{},
		StartedAt: i.clock.Now(),
	}

	err := i.ingest(ctx, r, &report)

	report.FinishedAt = i.clock.Now()
	i.observe(report, err)

	logger := log.With().Str("report_id", report.ID).Int("stored", report.Stored).Int("rejected", report.Rejected()).Logger()
	if err != nil {
		logger.Error().Err(err).Msg("ingestion aborted")
		return report, err
	}
	logger.Info().Dur("duration", report.Duration()).Msg("ingestion finished")

	return report, nil
}

func (i *csvIngester) ingest(ctx context.Context, r io.Reader, report *Report) error {
	reader := bufio.NewReader(r)
	lineNum := 0

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("%w: %w", ErrStream, readErr)
		}
		if line == "" && readErr != nil {
			return nil
		}

		lineNum++

		if lineNum%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("ingestion cancelled at line %d: %w", lineNum, err)
			}
		}

		if err := i.ingestLine(ctx, lineNum, line, report); err != nil {
			return err
		}

		if readErr != nil {
			return nil
		}
	}
}

func (i *csvIngester) ingestLine(ctx context.Context, lineNum int, line string, report *Report) error {
	if lineNum == 1 && i.skipHeader {
		return nil
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	obs, err := ParseLine(strings.TrimRight(line, "\r\n"))
	if err != nil {
		log.Warn().Str("report_id", report.ID).Int("line", lineNum).Err(err).Msg("skipping malformed line")
		report.Failures = append(report.Failures, LineFailure{Line: lineNum, Error: err.Error()})
		return nil
	}

	if err := i.repo.Create(ctx, &obs); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrStore, lineNum, err)
	}
	report.Stored++

	return nil
}

func (i *csvIngester) observe(report Report, err error) {
	outcome := "success"
	switch {
	case errors.Is(err, ErrStream):
		outcome = "stream_error"
	case errors.Is(err, ErrStore):
		outcome = "store_error"
	case err != nil:
		outcome = "cancelled"
	}

	i.metrics.UploadsTotal.WithLabelValues(outcome).Inc()
	i.metrics.RowsStored.Add(float64(report.Stored))
	i.metrics.RowsRejected.Add(float64(report.Rejected()))
	i.metrics.IngestDuration.Observe(report.Duration().Seconds())
}
