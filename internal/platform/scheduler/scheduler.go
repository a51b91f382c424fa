// Package scheduler runs the periodic data reload off the request path.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"energy_backend/internal/feature/prices/usecase"
)

// Scheduler refreshes the loaded price series on a cron schedule. Each run
// re-reads the price tables and refits the models; request handlers keep
// serving the previous data until the swap.
type Scheduler struct {
	cron   *cron.Cron
	loader *usecase.LoadUsecase
	files  []usecase.SeriesFile
}

// NewScheduler creates a Scheduler that reloads the given series on the given
// cron expression (standard 5-field syntax).
func NewScheduler(ctx context.Context, loader *usecase.LoadUsecase, files []usecase.SeriesFile, spec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		loader: loader,
		files:  files,
	}

	if _, err := s.cron.AddFunc(spec, func() {
		slog.Info("scheduled reload started", "series", len(s.files))
		if err := s.loader.LoadAll(ctx, s.files); err != nil {
			slog.Error("scheduled reload finished with errors", "error", err)
			return
		}
		slog.Info("scheduled reload finished")
	}); err != nil {
		return nil, fmt.Errorf("invalid reload schedule %q: %w", spec, err)
	}

	return s, nil
}

// Start begins running scheduled reloads in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels future runs; a reload in progress finishes.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
