// Package health serves liveness and readiness checks
package health

import (
	"context"
	"database/sql"
	"time"

	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	dbPingTimeout      = 2 * time.Second
	goroutineThreshold = 1000
)

// StorageChecker reports whether attachment storage is usable
type StorageChecker interface {
	Check() error
}

// NewHandler builds the /live and /ready handler. Check results are also
// exported as prometheus gauges when reg is not nil.
func NewHandler(db *sql.DB, storage StorageChecker, reg prometheus.Registerer) healthcheck.Handler {
	var h healthcheck.Handler
	if reg != nil {
		h = healthcheck.NewMetricsHandler(reg, "interviewmail")
	} else {
		h = healthcheck.NewHandler()
	}

	h.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(goroutineThreshold))

	if db != nil {
		h.AddReadinessCheck("database", DatabaseCheck(db))
	}
	if storage != nil {
		h.AddReadinessCheck("attachment-storage", storage.Check)
	}

	return h
}

// DatabaseCheck pings the database with a short timeout
func DatabaseCheck(db *sql.DB) healthcheck.Check {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
		defer cancel()

		return db.PingContext(ctx)
	}
}
