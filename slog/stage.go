// Package slog provides logging decorators for askweb services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/askweb/askweb"
)

// Ensure LoggingStage implements askweb.Stage.
var _ askweb.Stage = (*LoggingStage)(nil)

// LoggingStage wraps a Stage with timing and outcome logging.
type LoggingStage struct {
	next   askweb.Stage
	logger *slog.Logger
}

// NewLoggingStage creates a new LoggingStage.
func NewLoggingStage(next askweb.Stage, logger *slog.Logger) *LoggingStage {
	return &LoggingStage{next: next, logger: logger}
}

// Name delegates to the wrapped stage.
func (s *LoggingStage) Name() string {
	return s.next.Name()
}

// Extract runs the wrapped stage and logs its duration and candidate count.
func (s *LoggingStage) Extract(ctx context.Context, url string) ([]askweb.Extraction, error) {
	begin := time.Now()
	candidates, err := s.next.Extract(ctx, url)
	if err != nil {
		s.logger.Warn("extraction failed",
			"stage", s.next.Name(),
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("extraction",
		"stage", s.next.Name(),
		"url", url,
		"candidates", len(candidates),
		"duration", time.Since(begin),
	)
	return candidates, nil
}
