package bootstrap

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/dataflow/config"
	"github.com/kbukum/dataflow/logger"
	"github.com/kbukum/dataflow/pipeline"
)

func testConfig() *config.Options {
	opts := config.Default("bootstrap-test")
	opts.Logging.Level = "error"
	return opts
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(testConfig())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if app.Name != "bootstrap-test" {
		t.Errorf("Name = %q, want %q", app.Name, "bootstrap-test")
	}
	if app.Version == "" {
		t.Error("Version is empty")
	}
	if app.Translator() == nil {
		t.Error("Translator is nil")
	}
}

func TestNewAppNilConfig(t *testing.T) {
	app, err := NewApp(nil)
	if err != nil {
		t.Fatalf("NewApp(nil): %v", err)
	}
	if app.Cfg == nil || app.Cfg.JobName == "" {
		t.Error("nil config did not get defaults")
	}
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.JobName = "x" // too short
	if _, err := NewApp(cfg); err == nil {
		t.Error("NewApp accepted invalid config")
	}
}

func TestNewAppOptions(t *testing.T) {
	custom := logger.NewNop()
	app, err := NewApp(testConfig(), WithLogger(custom), WithShutdownTimeout(time.Second))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if app.Logger != custom {
		t.Error("WithLogger was not applied")
	}
	if app.shutdownTimeout != time.Second {
		t.Errorf("shutdownTimeout = %v, want 1s", app.shutdownTimeout)
	}
}

func TestStartWithObservabilityDisabled(t *testing.T) {
	app, err := NewApp(testConfig())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := app.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

func TestShutdownRunsHooksInOrder(t *testing.T) {
	app, err := NewApp(testConfig())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	var order []int
	app.OnShutdown(
		func(ctx context.Context) error { order = append(order, 1); return nil },
		func(ctx context.Context) error { order = append(order, 2); return nil },
	)

	if err := app.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("hook order = %v, want [1 2]", order)
	}
}

func TestTranslateAndRender(t *testing.T) {
	app, err := NewApp(testConfig())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	p := pipeline.New("render")
	lines := pipeline.NewCollection("lines", pipeline.NamedCoder("utf8"), pipeline.NamedWindowing("global"))
	p.Root().Apply("read", pipeline.NodeSpec{
		Outputs: []pipeline.Output{{Key: pipeline.NewKey(), Value: lines}},
	})
	p.Root().Apply("write", pipeline.NodeSpec{Inputs: []pipeline.Value{lines}})

	result, err := app.Translate(context.Background(), p)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	rendered := app.RenderExecution(result.Execution)
	for _, want := range []string{"graph TD", "read", "write"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendering missing %q:\n%s", want, rendered)
		}
	}
}
