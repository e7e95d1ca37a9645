package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load loads translation options for a job. It searches for config.yml
// and .env in standard locations, applies environment overrides,
// applies defaults, and validates the result.
func Load(jobName string, opts ...LoaderOption) (*Options, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}
	if lc.ConfigFile == "" {
		lc.ConfigFile = findConfigFile(lc.FileSystem, jobName)
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findEnvFile(lc.FileSystem, jobName)
	}

	options := &Options{JobName: jobName}
	if err := loadFromFiles(options, lc); err != nil {
		return nil, err
	}
	if options.JobName == "" {
		options.JobName = jobName
	}

	options.ApplyDefaults()
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return options, nil
}

func loadFromFiles(options *Options, lc LoaderConfig) error {
	// .env first so environment overrides see its values.
	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", lc.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("DATAFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if lc.ConfigFile != "" && lc.FileSystem.Exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("loading config file %s: %w", lc.ConfigFile, err)
		}
	}

	if err := v.Unmarshal(options); err != nil {
		return fmt.Errorf("unmarshaling options: %w", err)
	}
	return nil
}

// bindEnvKeys registers the keys viper should read from the
// environment. AutomaticEnv alone does not see keys absent from the
// config file.
func bindEnvKeys(v *viper.Viper) {
	for _, key := range []string{
		"job_name",
		"environment",
		"debug",
		"logging.level",
		"logging.format",
		"logging.output",
		"observability.enabled",
		"observability.endpoint",
		"observability.insecure",
		"observability.sample_rate",
	} {
		// error only occurs with zero arguments
		_ = v.BindEnv(key)
	}
}

// findConfigFile searches for config.yml in standard locations.
func findConfigFile(fs FileSystem, jobName string) string {
	searchPaths := []string{
		fmt.Sprintf("./config/%s.yml", jobName),
		"./config/config.yml",
		"./config.yml",
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// findEnvFile searches for .env files in standard locations.
func findEnvFile(fs FileSystem, jobName string) string {
	searchPaths := []string{
		fmt.Sprintf(".env.%s", jobName),
		".env",
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
