package ports

import "context"

// HealthChecker checks the health of a configured storage backend.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgres", "redis").
	Name() string
}
