// Package worker runs the background sweeper that expires stale enrollment
// tokens and returns their reserved licenses to the pool.
package worker

import (
	"context"
	"log/slog"
	"time"

	"mdm/config"
	"mdm/internal/delivery"
	"mdm/internal/usecase"

	"go.uber.org/fx"
)

type sweeper struct {
	cfg    *config.Config
	logger *slog.Logger
	uc     usecase.EnrollmentUsecase
	stop   chan struct{}
	done   chan struct{}
}

// ServerParams holds dependencies for the sweeper, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	EnrollmentUC usecase.EnrollmentUsecase
}

// NewServer creates the token expiry sweeper.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &sweeper{
		cfg:    params.Cfg,
		logger: params.Logger,
		uc:     params.EnrollmentUC,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.shutdown,
	})

	return srv, nil
}

// Serve runs the sweep loop until the process stops.
func (s *sweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	interval := s.cfg.Enrollment.SweepInterval
	s.logger.Info("Starting enrollment token sweeper", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	swept, err := s.uc.ExpireStaleTokens(ctx)
	if err != nil {
		s.logger.Error("Token sweep failed", slog.Any("error", err))

		return
	}

	if swept > 0 {
		s.logger.Info("Expired stale enrollment tokens", slog.Int("count", swept))
	}
}

// shutdown stops the sweep loop and waits for an in-flight sweep to finish.
func (s *sweeper) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down enrollment token sweeper")
	close(s.stop)

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
