package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/kbukum/dataflow/config"
	"github.com/kbukum/dataflow/graph"
	"github.com/kbukum/dataflow/logger"
	"github.com/kbukum/dataflow/observability"
	"github.com/kbukum/dataflow/pipeline"
	"github.com/kbukum/dataflow/translate"
	"github.com/kbukum/dataflow/version"
)

// shutdownFunc tears down one started subsystem.
type shutdownFunc func(ctx context.Context) error

// App holds everything a translation job needs at runtime.
type App struct {
	Name    string
	Version string
	Cfg     *config.Options
	Logger  *logger.Logger

	translator      *translate.Translator
	shutdownTimeout time.Duration
	onShutdown      []Hook
	teardown        []shutdownFunc
}

// NewApp creates an application from validated options. It applies
// defaults, validates the config, and initializes the logger and
// translator.
func NewApp(cfg *config.Options, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default("dataflow")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	app := &App{
		Name:            cfg.JobName,
		Version:         version.GetShortVersion(),
		Cfg:             cfg,
		shutdownTimeout: 15 * time.Second,
	}

	o := resolveOptions(opts)
	if o.shutdownTimeout != nil {
		app.shutdownTimeout = *o.shutdownTimeout
	}
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		app.Logger = logger.New(&cfg.Logging, cfg.JobName)
	}

	translator, err := translate.NewTranslator(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating translator: %w", err)
	}
	app.translator = translator

	return app, nil
}

// Start initializes telemetry export when observability is enabled.
// Without it the job runs with the no-op global providers.
func (a *App) Start(ctx context.Context) error {
	if !a.Cfg.Observability.Enabled {
		a.Logger.Debug("observability disabled, skipping telemetry init")
		return nil
	}

	info := version.GetVersionInfo()

	tracerCfg := observability.TracerConfig{
		ServiceName:    a.Name,
		ServiceVersion: info.Version,
		Environment:    a.Cfg.Environment,
		Endpoint:       a.Cfg.Observability.Endpoint,
		Insecure:       a.Cfg.Observability.Insecure,
		SampleRate:     a.Cfg.Observability.SampleRate,
	}
	tp, err := observability.InitTracer(ctx, tracerCfg)
	if err != nil {
		return fmt.Errorf("initializing tracer: %w", err)
	}
	a.teardown = append(a.teardown, tp.Shutdown)

	meterCfg := observability.DefaultMeterConfig(a.Name)
	meterCfg.ServiceVersion = info.Version
	meterCfg.Environment = a.Cfg.Environment
	meterCfg.Endpoint = a.Cfg.Observability.Endpoint
	meterCfg.Insecure = a.Cfg.Observability.Insecure
	mp, err := observability.InitMeter(ctx, &meterCfg)
	if err != nil {
		return fmt.Errorf("initializing meter: %w", err)
	}
	a.teardown = append(a.teardown, mp.Shutdown)

	a.Logger.Info("telemetry initialized", logger.Fields(
		"endpoint", a.Cfg.Observability.Endpoint,
		"sample_rate", a.Cfg.Observability.SampleRate,
	))
	return nil
}

// Translator returns the job's translator.
func (a *App) Translator() *translate.Translator { return a.translator }

// Translate lowers a pipeline through the job's translator.
func (a *App) Translate(ctx context.Context, p *pipeline.Pipeline) (*translate.Result, error) {
	return a.translator.Translate(ctx, p)
}

// RenderExecution returns a Mermaid rendering of a lowered execution
// graph, for diagnostics and docs.
func (a *App) RenderExecution(g *graph.Graph[translate.Step, translate.Tag]) string {
	return g.Mermaid(func(s translate.Step) string { return s.Name })
}

// Shutdown runs registered hooks and tears down telemetry within the
// configured timeout.
func (a *App) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.shutdownTimeout)
	defer cancel()

	if err := runHooks(ctx, a.onShutdown); err != nil {
		a.Logger.Error("shutdown hook failed", logger.Fields(logger.FieldError, err.Error()))
		return err
	}

	var firstErr error
	for i := len(a.teardown) - 1; i >= 0; i-- {
		if err := a.teardown[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
