package bootstrap

import (
	"context"
	"fmt"
)

// Hook is a callback that runs during application shutdown. Jobs
// register hooks to flush or release resources the bootstrap layer
// does not know about.
type Hook func(ctx context.Context) error

// OnShutdown registers hooks that run, in order, before telemetry is
// torn down.
func (a *App) OnShutdown(hooks ...Hook) {
	a.onShutdown = append(a.onShutdown, hooks...)
}

// runHooks executes a slice of hooks sequentially, returning the first error.
func runHooks(ctx context.Context, hooks []Hook) error {
	for i, h := range hooks {
		if err := h(ctx); err != nil {
			return fmt.Errorf("hook %d failed: %w", i, err)
		}
	}
	return nil
}
