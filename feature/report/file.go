package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hr-sync/feature/integration/models"

	"go.uber.org/zap"
)

// FileSink writes one JSON artifact and one human-readable text rendition per
// run, and logs a summary line.
type FileSink struct {
	dir    string
	logger *zap.Logger
}

// NewFileSink creates a file sink, ensuring the reports directory exists.
func NewFileSink(dir string, logger *zap.Logger) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}
	return &FileSink{dir: dir, logger: logger}, nil
}

// Write implements Sink.
func (s *FileSink) Write(ctx context.Context, r *models.RunReport) error {
	artifact := NewArtifact(r)

	if err := s.writeJSON(artifact); err != nil {
		return err
	}
	if err := s.writeText(artifact); err != nil {
		return err
	}
	s.logSummary(artifact)

	s.logger.Info("Report artifacts generated", zap.String("id", artifact.ID))
	return nil
}

// Latest returns up to limit of the most recent JSON artifacts, newest first.
func (s *FileSink) Latest(limit int) ([]Artifact, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read reports directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	// Artifact names embed the timestamp, so lexical order is chronological.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	artifacts := make([]Artifact, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", name, err)
		}
		var a Artifact
		if err := json.Unmarshal(data, &a); err != nil {
			s.logger.Warn("Skipping unreadable report artifact", zap.String("file", name), zap.Error(err))
			continue
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

func (s *FileSink) writeJSON(a Artifact) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	path := filepath.Join(s.dir, a.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

func (s *FileSink) writeText(a Artifact) error {
	var b strings.Builder
	line := strings.Repeat("=", 80)
	divider := strings.Repeat("-", 80)

	b.WriteString(line + "\n")
	b.WriteString("                         HR INTEGRATION RUN REPORT\n")
	b.WriteString(line + "\n\n")
	b.WriteString(fmt.Sprintf("Report ID: %s\n", a.ID))
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", a.Timestamp.Format("02/01/2006 15:04:05")))

	b.WriteString("EXECUTIVE SUMMARY:\n")
	b.WriteString(divider + "\n")
	b.WriteString(fmt.Sprintf("Records Processed: %d\n", a.Summary.Processed))
	b.WriteString(fmt.Sprintf("Records Inserted:  %d\n", a.Summary.Inserted))
	b.WriteString(fmt.Sprintf("Records Updated:   %d\n", a.Summary.Updated))
	b.WriteString(fmt.Sprintf("Records Skipped:   %d\n", a.Summary.Skipped))
	b.WriteString(fmt.Sprintf("Errors Found:      %d\n", a.Summary.Errors))
	b.WriteString(fmt.Sprintf("Success Rate:      %s\n", a.Details.SuccessRate))
	b.WriteString(fmt.Sprintf("Execution Time:    %s\n\n", orNA(a.Execution.Duration)))

	b.WriteString("EXECUTION DETAILS:\n")
	b.WriteString(divider + "\n")
	b.WriteString(fmt.Sprintf("Start: %s\n", a.Execution.StartTime.Format("02/01/2006 15:04:05")))
	if a.Execution.EndTime != nil {
		b.WriteString(fmt.Sprintf("End:   %s\n", a.Execution.EndTime.Format("02/01/2006 15:04:05")))
	} else {
		b.WriteString("End:   N/A\n")
	}

	if a.Summary.Errors == 0 {
		b.WriteString("\nSTATUS: SUCCESS\n")
	} else {
		b.WriteString("\nSTATUS: SUCCESS WITH ALERTS\n\n")
		b.WriteString("ERRORS AND INCONSISTENCIES:\n")
		b.WriteString(divider + "\n")
		for i, e := range a.Details.Errors {
			b.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, e.Message))
			if e.Colaborador != nil {
				b.WriteString(fmt.Sprintf("   CPF: %s\n", orNA(e.Colaborador.CPF)))
				b.WriteString(fmt.Sprintf("   Name: %s %s\n", orNA(e.Colaborador.Nome), e.Colaborador.Sobrenome))
				b.WriteString(fmt.Sprintf("   Company: %s\n", orNA(e.Colaborador.EmpresaNome)))
			}
		}
	}

	b.WriteString("\n" + line + "\n")

	path := filepath.Join(s.dir, a.ID+".txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}

func (s *FileSink) logSummary(a Artifact) {
	fields := []zap.Field{
		zap.Int("processed", a.Summary.Processed),
		zap.Int("inserted", a.Summary.Inserted),
		zap.Int("updated", a.Summary.Updated),
		zap.Int("skipped", a.Summary.Skipped),
		zap.Int("errors", a.Summary.Errors),
		zap.String("duration", a.Execution.Duration),
	}
	if a.Summary.Errors == 0 {
		s.logger.Info("Integration run completed", fields...)
	} else {
		s.logger.Warn("Integration run completed with alerts", fields...)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
