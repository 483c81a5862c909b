// Package config loads the settings of the fhirbind command from flags,
// FHIRBIND_* environment variables and an optional YAML file.
package config

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/damedic/fhir-binding-go/fhirjson"
	"github.com/damedic/fhir-binding-go/schema"
	"github.com/damedic/fhir-binding-go/validate"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables, e.g. FHIRBIND_LOG_LEVEL.
const EnvPrefix = "FHIRBIND"

// FileName is the configuration file looked up in the working directory
// when no --config flag is given.
const FileName = ".fhirbind"

type Config struct {
	Workers   int    `mapstructure:"workers"`
	Strict    bool   `mapstructure:"strict"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	// Definitions are conformance bundles used instead of the embedded R4
	// types.
	Definitions []string `mapstructure:"definitions"`
	// Modifiers are the modifier extension urls the caller understands.
	Modifiers      []string `mapstructure:"modifiers"`
	CheckModifiers bool     `mapstructure:"check-modifiers"`
}

// RegisterFlags adds the flags read by Load to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default ./"+FileName+".yaml)")
	fs.Int("workers", runtime.NumCPU(), "documents validated at once")
	fs.Bool("strict", true, "reject unknown fields, ambiguous choices and malformed primitives")
	fs.String("log-level", "info", "log level")
	fs.String("log-format", "console", "log format, console or json")
	fs.StringSlice("definitions", nil, "conformance bundles used instead of the embedded R4 types")
	fs.StringSlice("modifiers", nil, "understood modifier extension urls")
	fs.Bool("check-modifiers", false, "report modifier extensions that are not understood")
}

// Load merges, in increasing priority, defaults, the config file, the
// environment and the flags that were set explicitly.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("strict", true)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "console")
	v.SetDefault("definitions", []string{})
	v.SetDefault("modifiers", []string{})
	v.SetDefault("check-modifiers", false)

	for _, key := range []string{"workers", "strict", "log-level", "log-format", "definitions", "modifiers", "check-modifiers"} {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "binding %s", key)
		}
	}

	explicit := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "binding flags")
		}
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", explicit)
		}
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "reading config file")
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if cfg.Workers <= 0 {
		return nil, errors.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, errors.Wrapf(err, "log level %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return nil, errors.Errorf("log format must be console or json, got %q", cfg.LogFormat)
	}
	return cfg, nil
}

// Policy returns the decoding policy.
func (c *Config) Policy() fhirjson.Policy {
	if c.Strict {
		return fhirjson.Strict()
	}
	return fhirjson.Lenient()
}

// Logger returns a logger writing to w in the configured format and level.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if c.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Registry returns the embedded R4 registry, or the one built from the
// configured definition files.
func (c *Config) Registry() (*schema.Registry, error) {
	if len(c.Definitions) == 0 {
		return schema.R4()
	}

	var readers []io.Reader
	for _, path := range c.Definitions {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening definitions")
		}
		defer f.Close()
		readers = append(readers, f)
	}
	reg, err := schema.Load(readers...)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", strings.Join(c.Definitions, ", "))
	}
	return reg, nil
}

// ValidateOptions returns the options of validate.Batch.
func (c *Config) ValidateOptions(reg *schema.Registry) []validate.Option {
	opts := []validate.Option{
		validate.WithRegistry(reg),
		validate.WithPolicy(c.Policy()),
		validate.WithWorkers(c.Workers),
	}
	if c.CheckModifiers {
		opts = append(opts, validate.WithUnderstoodModifiers(c.Modifiers...))
	}
	return opts
}
