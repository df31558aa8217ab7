// Package config loads settings for the spline command from the process
// environment, dotenv files and YAML job files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"honnef.co/go/spline"
)

// DefaultEnvFile is the dotenv file read when no other file is named.
const DefaultEnvFile = ".env"

// Env holds the defaults of the spline command, read from SPLINE_* variables.
type Env struct {
	// Steps is the number of points per curve segment, from SPLINE_STEPS.
	Steps int `env:"SPLINE_STEPS" envDefault:"12"`
	// Mode is the interpretation of the knots, from SPLINE_MODE.
	Mode spline.Mode `env:"SPLINE_MODE" envDefault:"fitted"`
	// Format is the output format, from SPLINE_FORMAT.
	Format string `env:"SPLINE_FORMAT" envDefault:"list"`
	// Precision is the number of decimals in formatted coordinates, from
	// SPLINE_PRECISION. Zero means shortest exact representation.
	Precision int `env:"SPLINE_PRECISION" envDefault:"0"`
	// LogLevel is the log level, from SPLINE_LOG_LEVEL.
	LogLevel string `env:"SPLINE_LOG_LEVEL" envDefault:"info"`
}

// Vars is a set of environment variables.
type Vars map[string]string

// FromOS builds a Vars map from the current process environment.
func FromOS() Vars {
	out := make(Vars)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}

// Parse fills an Env from vars, applying defaults for unset variables.
func Parse(vars Vars) (Env, error) {
	if vars == nil {
		vars = Vars{}
	}
	var cfg Env
	if err := envparse.ParseWithOptions(&cfg, envparse.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Steps < 1 {
		return Env{}, fmt.Errorf("parse environment: SPLINE_STEPS must be positive, got %d", cfg.Steps)
	}
	if cfg.Precision < 0 {
		return Env{}, fmt.Errorf("parse environment: SPLINE_PRECISION must not be negative, got %d", cfg.Precision)
	}
	return cfg, nil
}

// Load reads the dotenv file at path and parses an Env from it, overlaid with
// osVars. Variables in osVars take precedence over the file, the same as with
// godotenv.Load. A missing file is ignored unless required is set.
func Load(path string, required bool, osVars Vars) (Env, error) {
	vars := make(Vars)
	if path != "" {
		fileVars, err := LoadEnvFile(path)
		switch {
		case err == nil:
			maps.Copy(vars, fileVars)
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return Env{}, err
		}
	}
	maps.Copy(vars, osVars)
	return Parse(vars)
}

// LoadEnvFile loads a single .env-style file into Vars.
func LoadEnvFile(path string) (Vars, error) {
	envMap, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("load env file %q: %w", path, err)
	}
	return Vars(envMap), nil
}
