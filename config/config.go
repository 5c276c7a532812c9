// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the ftcenters CLI.
//
//	params:
//	  max_centers: 8
//	  max_clients_per_center: 4
//	  max_failed_centers: 1
//	  mode: standard
//	search:
//	  strategy: binary
//	  seed: 42
//	  parallelism: 4
//	  max_attempts: 0
//	  timeout: 30s
//	log:
//	  level: info
//	  format: text
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ftcenters/cluster"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Run is the complete configuration of one solve.
type Run struct {
	// Params are validated by cluster.Params.Validate.
	Params cluster.Params `yaml:"params" validate:"-"`
	Search Search         `yaml:"search"`
	Log    Log            `yaml:"log"`
}

// Search controls the threshold search.
type Search struct {
	Strategy    string        `yaml:"strategy" validate:"omitempty,oneof=binary linear"`
	Seed        int64         `yaml:"seed"`
	Parallelism int           `yaml:"parallelism" validate:"gte=1,lte=1024"`
	MaxAttempts int           `yaml:"max_attempts" validate:"gte=0"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
}

// Log selects the slog handler of the CLI.
type Log struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

var runValidate = validator.New()

// Default returns the configuration used when no file is given.
func Default() Run {
	return Run{
		Params: cluster.Params{Mode: cluster.ModeStandard},
		Search: Search{Strategy: "binary", Seed: 1, Parallelism: 1},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Decode reads a configuration from r on top of Default.
// Unknown keys are rejected.
func Decode(r io.Reader) (Run, error) {
	run := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&run); err != nil && !errors.Is(err, io.EOF) {
		return Run{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return run, nil
}

// Load reads the configuration file at path.
func Load(path string) (Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return Run{}, err
	}
	defer f.Close()

	run, err := Decode(f)
	if err != nil {
		return Run{}, fmt.Errorf("%s: %w", path, err)
	}

	return run, nil
}

// Validate checks every section. Parameter errors wrap cluster.ErrInvalidParameter,
// the rest wrap ErrInvalid.
func (r Run) Validate() error {
	if err := r.Params.Validate(); err != nil {
		return err
	}
	if err := runValidate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: %q fails %s", fe.Namespace(), fmt.Sprint(fe.Value()), fe.ActualTag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Options translates the search section into cluster options.
func (r Run) Options() ([]cluster.Option, error) {
	st, err := cluster.ParseStrategy(r.Search.Strategy)
	if err != nil {
		return nil, err
	}

	return []cluster.Option{
		cluster.WithStrategy(st),
		cluster.WithSeed(r.Search.Seed),
		cluster.WithParallelism(r.Search.Parallelism),
		cluster.WithMaxAttempts(r.Search.MaxAttempts),
	}, nil
}

// Handler returns the slog handler described by l, writing to w.
func (l Log) Handler(w io.Writer) slog.Handler {
	var level slog.Level
	switch l.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}
