package sentry

import (
	"time"

	"sahabat3t-backend/config"

	sentrylib "github.com/getsentry/sentry-go"
)

// Init sets up the Sentry SDK when a DSN is configured. Returns false when
// reporting is disabled.
func Init() (bool, error) {
	cfg := config.Get()
	if cfg.Sentry.Dsn == "" {
		return false, nil
	}
	err := sentrylib.Init(sentrylib.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      string(cfg.Mode),
		EnableTracing:    true,
		TracesSampleRate: 0.2,
		EnableLogs:       true,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Flush drains pending events before shutdown.
func Flush() {
	sentrylib.Flush(2 * time.Second)
}
