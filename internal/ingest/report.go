package ingest

import (
	"fmt"
	"time"
)

type LineFailure struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

// Report summarises one ingestion run. Line numbers are 1-based and count the
// header line when one is present.
type Report struct {
	ID         string        `json:"id"`
	Stored     int           `json:"stored"`
	Failures   []LineFailure `json:"failures"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

func (r Report) Rejected() int {
	return len(r.Failures)
}

func (r Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r Report) Message() string {
	if r.Rejected() == 0 {
		return fmt.Sprintf("File processed successfully: %d records stored", r.Stored)
	}
	return fmt.Sprintf("File processed with errors: %d records stored, %d lines skipped", r.Stored, r.Rejected())
}
