package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hr-sync/feature/integration/models"

	"github.com/google/uuid"
)

// Config holds configuration for report emission.
type Config struct {
	// Dir is the directory report artifacts are written to.
	Dir string `mapstructure:"dir" default:"reports"`
	// S3Upload toggles archival of the JSON artifact to object storage.
	S3Upload bool `mapstructure:"s3_upload" default:"false"`
}

// Sink consumes a finished run report.
type Sink interface {
	// Write persists or displays the report. The report is already final;
	// an error here is a secondary failure of the run, not a run failure.
	Write(ctx context.Context, r *models.RunReport) error
}

// Execution describes the run timing inside an artifact.
type Execution struct {
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Duration  string     `json:"duration"`
}

// Summary carries the aggregate counters inside an artifact.
type Summary struct {
	Processed int `json:"processed"`
	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

// Details carries the per-record failures inside an artifact.
type Details struct {
	SuccessRate string            `json:"successRate"`
	Errors      []models.RunError `json:"errors"`
}

// Artifact is the serialized form of one run report.
type Artifact struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Execution Execution `json:"execution"`
	Summary   Summary   `json:"summary"`
	Details   Details   `json:"details"`
}

// NewArtifact assembles the artifact for a finished report.
func NewArtifact(r *models.RunReport) Artifact {
	now := time.Now()

	duration := ""
	if r.EndTime != nil {
		duration = fmt.Sprintf("%.2fs", r.Duration().Seconds())
	}

	errs := r.Errors
	if errs == nil {
		errs = []models.RunError{}
	}

	return Artifact{
		ID:        fmt.Sprintf("integration-%s-%s", now.Format("2006-01-02T15-04-05"), uuid.NewString()[:8]),
		Timestamp: now,
		Execution: Execution{
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Duration:  duration,
		},
		Summary: Summary{
			Processed: r.Processed,
			Inserted:  r.Inserted,
			Updated:   r.Updated,
			Skipped:   r.Skipped,
			Errors:    len(r.Errors),
		},
		Details: Details{
			SuccessRate: fmt.Sprintf("%.2f%%", r.SuccessRate()),
			Errors:      errs,
		},
	}
}

// MultiSink fans a report out to several sinks in order.
// Every sink receives the report; the first error is returned.
type MultiSink []Sink

// Write implements Sink.
func (m MultiSink) Write(ctx context.Context, r *models.RunReport) error {
	var errs []error
	for _, s := range m {
		if err := s.Write(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
