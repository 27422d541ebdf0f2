package service

import (
	"context"
	"log/slog"

	"github.com/o-magnata69/back-end-api/internal/platform/logger"
	"github.com/o-magnata69/back-end-api/internal/redact"
	"github.com/o-magnata69/back-end-api/internal/store"
)

// DBStatusOK is reported when the database answered the probe query.
const DBStatusOK = "ok"

// HealthStatus is the outcome of a health probe.
type HealthStatus struct {
	// DBStatus is DBStatusOK or the text of the error the probe hit.
	DBStatus string
}

// HealthService reports whether the database is reachable.
type HealthService interface {
	Check(ctx context.Context) HealthStatus
}

// HealthServiceImpl implements HealthService over a store.Pinger.
type HealthServiceImpl struct {
	pinger store.Pinger
	logger *slog.Logger
}

// NewHealthService creates a new HealthService
func NewHealthService(pinger store.Pinger, logger *slog.Logger) HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthServiceImpl{
		pinger: pinger,
		logger: logger.With("component", "health_service"),
	}
}

// Check implements HealthService. It never fails; a database error is
// folded into the returned status.
func (s *HealthServiceImpl) Check(ctx context.Context) HealthStatus {
	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("database health probe failed",
			"error", redact.Error(err))
		return HealthStatus{DBStatus: err.Error()}
	}
	return HealthStatus{DBStatus: DBStatusOK}
}
