package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Output formats supported by the command line evaluator.
const (
	OutputJSON = "json"
	OutputText = "text"
)

// Config holds the configuration settings for the geocalc evaluator.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Output: How results are printed (json or text).
// - Precision: Number of digits after the decimal point for text output, -1 for the shortest exact form.
// - MetricsTextfile: Path of the Prometheus textfile written after each run; empty disables it.
type Config struct {
	Env             string `mapstructure:"env"`              // Env is the current environment: local, development, production.
	Output          string `mapstructure:"output"`           // Output is the result format.
	Precision       int    `mapstructure:"precision"`        // Precision of formatted floats.
	MetricsTextfile string `mapstructure:"metrics_textfile"` // MetricsTextfile is the textfile collector target.
}

// MustLoad loads the configuration from the environment and an optional YAML
// file named by GEOCALC_CONFIG. It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("env", "production")
	v.SetDefault("output", OutputJSON)
	v.SetDefault("precision", -1)
	v.SetDefault("metrics_textfile", "")

	v.SetEnvPrefix("GEOCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("failed to parse configuration")
	}

	switch cfg.Output {
	case OutputJSON, OutputText:
	default:
		panic("unsupported output format, must be json or text")
	}

	if cfg.Precision < -1 {
		panic("precision must be -1 or a non-negative integer")
	}

	return &cfg
}
