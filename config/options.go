package config

import (
	"github.com/kbukum/dataflow/logger"
	"github.com/kbukum/dataflow/validation"
)

// Options contains the run configuration for a single pipeline
// translation.
type Options struct {
	// JobName identifies the translated pipeline run.
	JobName string `yaml:"job_name" mapstructure:"job_name" validate:"required,min=2"`
	// Environment is the deployment environment.
	Environment string `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	// Debug enables verbose translation logging.
	Debug bool `yaml:"debug" mapstructure:"debug"`
	// Logging configures the structured logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	// Observability configures tracing and metrics export.
	Observability ObservabilityOptions `yaml:"observability" mapstructure:"observability"`
}

// ObservabilityOptions configures OTLP export for translation spans and
// metrics. Disabled by default; the translate driver no-ops without it.
type ObservabilityOptions struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// Default returns Options with defaults applied for the given job name.
func Default(jobName string) *Options {
	opts := &Options{JobName: jobName}
	opts.ApplyDefaults()
	return opts
}

// ApplyDefaults applies default values to the options.
func (o *Options) ApplyDefaults() {
	if o.Environment == "" {
		o.Environment = "development"
	}
	if o.Environment == "development" {
		o.Debug = true
	}
	if o.Logging.ServiceName == "" && o.JobName != "" {
		o.Logging.ServiceName = o.JobName
	}
	o.Logging.ApplyDefaults()
	if o.Observability.Enabled && o.Observability.Endpoint == "" {
		o.Observability.Endpoint = "localhost:4318"
	}
}

// Validate validates the options.
func (o *Options) Validate() error {
	if err := validation.Validate(o); err != nil {
		return err
	}
	return o.Logging.Validate()
}
