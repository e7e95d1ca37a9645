package bootstrap

import (
	"time"

	"github.com/kbukum/dataflow/logger"
)

// Option configures the App during creation.
type Option func(*appOptions)

// appOptions collects all option values before applying to App.
type appOptions struct {
	logger          *logger.Logger
	shutdownTimeout *time.Duration
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application. If not set,
// the logger is initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithShutdownTimeout sets the maximum duration for shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *appOptions) {
		o.shutdownTimeout = &d
	}
}
