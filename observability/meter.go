package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the job name the metrics belong to.
	ServiceName string
	// ServiceVersion is the version of the job.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds metric instruments for pipeline translation.
type Metrics struct {
	pipelineTotal     metric.Int64Counter
	pipelineDuration  metric.Float64Histogram
	nodeTotal         metric.Int64Counter
	tagBindTotal      metric.Int64Counter
	translateErrTotal metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	pipelineTotal, err := meter.Int64Counter("translate.pipeline.total",
		metric.WithDescription("Total number of pipelines translated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating translate.pipeline.total counter: %w", err)
	}

	pipelineDuration, err := meter.Float64Histogram("translate.pipeline.duration",
		metric.WithDescription("Duration of pipeline translation in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating translate.pipeline.duration histogram: %w", err)
	}

	nodeTotal, err := meter.Int64Counter("translate.node.total",
		metric.WithDescription("Total number of nodes translated, by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating translate.node.total counter: %w", err)
	}

	tagBindTotal, err := meter.Int64Counter("translate.tag.bind.total",
		metric.WithDescription("Total number of tag bindings registered"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating translate.tag.bind.total counter: %w", err)
	}

	translateErrTotal, err := meter.Int64Counter("translate.error.total",
		metric.WithDescription("Total translation errors by code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating translate.error.total counter: %w", err)
	}

	return &Metrics{
		pipelineTotal:     pipelineTotal,
		pipelineDuration:  pipelineDuration,
		nodeTotal:         nodeTotal,
		tagBindTotal:      tagBindTotal,
		translateErrTotal: translateErrTotal,
	}, nil
}

// RecordPipeline records a completed pipeline translation.
func (m *Metrics) RecordPipeline(ctx context.Context, pipeline, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("pipeline", pipeline),
		attribute.String("status", status),
	)
	m.pipelineTotal.Add(ctx, 1, attrs)
	m.pipelineDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordNode records a translated node.
func (m *Metrics) RecordNode(ctx context.Context, kind string) {
	m.nodeTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordTagBindings records tag bindings installed for a node.
func (m *Metrics) RecordTagBindings(ctx context.Context, count int) {
	m.tagBindTotal.Add(ctx, int64(count))
}

// RecordError records a translation error by code.
func (m *Metrics) RecordError(ctx context.Context, code string) {
	m.translateErrTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("code", code)))
}
