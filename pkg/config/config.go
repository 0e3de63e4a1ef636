// Package config loads benchmark settings from TOML or YAML files.
//
// Every field has a default, so a config file only needs the values it
// changes. The file format is chosen by extension (.toml, .yaml, .yml).
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
//
//	solver = "./build/kclique"
//	seed   = 42
//
//	[sweep]
//	from  = 20
//	to    = 200
//	step  = 20
//	noise = 0.7
//
// Command-line flags are applied on top of the loaded values by the CLI.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cliquebench/pkg/dataset"
	errs "github.com/matzehuels/cliquebench/pkg/errors"
	"github.com/matzehuels/cliquebench/pkg/generate"
)

// Defaults.
const (
	DefaultSolver      = "./kclique"
	DefaultTestsDir    = "tests"
	DefaultDatasetsDir = "datasets"
	DefaultResults     = "results.csv"
	DefaultChart       = "clique_benchmark.png"
)

// Config holds all benchmark and generation settings.
type Config struct {
	Solver      string          `toml:"solver" yaml:"solver" validate:"required"`
	TestsDir    string          `toml:"tests_dir" yaml:"tests_dir" validate:"required"`
	DatasetsDir string          `toml:"datasets_dir" yaml:"datasets_dir" validate:"required"`
	Results     string          `toml:"results" yaml:"results" validate:"required"`
	Chart       string          `toml:"chart" yaml:"chart" validate:"required"`
	Seed        uint64          `toml:"seed" yaml:"seed"` // 0 seeds from the clock
	Formats     []string        `toml:"formats" yaml:"formats" validate:"min=1,dive,oneof=json edge_list edgelist txt dimacs solver in"`
	Sweep       Sweep           `toml:"sweep" yaml:"sweep"`
	Cases       []generate.Case `toml:"cases" yaml:"cases" validate:"dive"`
}

// Sweep is the range of graph sizes used by the benchmark.
type Sweep struct {
	From  int     `toml:"from" yaml:"from" validate:"gte=5"` // HardSweep plants cliques of at least 5 nodes
	To    int     `toml:"to" yaml:"to" validate:"gtefield=From"`
	Step  int     `toml:"step" yaml:"step" validate:"gte=1"`
	Noise float64 `toml:"noise" yaml:"noise" validate:"gte=0,lte=1"`
}

// Default returns the built-in configuration.
func Default() Config {
	formats := make([]string, 0, 4)
	for _, f := range dataset.AllFormats() {
		formats = append(formats, string(f))
	}
	return Config{
		Solver:      DefaultSolver,
		TestsDir:    DefaultTestsDir,
		DatasetsDir: DefaultDatasetsDir,
		Results:     DefaultResults,
		Chart:       DefaultChart,
		Formats:     formats,
		Sweep:       Sweep{From: 20, To: 100, Step: 20, Noise: 0.7},
	}
}

// Load reads the config file at path on top of the defaults and validates
// the result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.decode(data, filepath.Ext(path)); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return errs.New(errs.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
		}
		return nil
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode yaml")
		}
		return nil
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports the first violation.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "validate")
	}

	e := verrs[0]
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "required":
		return errs.New(errs.ErrCodeInvalidConfig, "%s: field is required", field)
	case "gte", "min":
		return errs.New(errs.ErrCodeInvalidConfig, "%s: must be at least %s", field, e.Param())
	case "lte":
		return errs.New(errs.ErrCodeInvalidConfig, "%s: must not exceed %s", field, e.Param())
	case "gtefield":
		return errs.New(errs.ErrCodeInvalidConfig, "%s: must not be less than %s", field, e.Param())
	case "ltefield":
		return errs.New(errs.ErrCodeInvalidConfig, "%s: must not exceed %s", field, e.Param())
	case "oneof":
		return errs.New(errs.ErrCodeInvalidConfig, "%s: %v is not one of [%s]", field, e.Value(), e.Param())
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "%s: validation failed (%s)", field, e.Tag())
	}
}

// DatasetFormats resolves the configured format names.
func (c Config) DatasetFormats() ([]dataset.Format, error) {
	out := make([]dataset.Format, 0, len(c.Formats))
	for _, name := range c.Formats {
		f, err := dataset.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out, nil
}

// SweepCases returns the hard_<n> cases of the benchmark sweep.
func (c Config) SweepCases() []generate.Case {
	return generate.HardSweep(c.Sweep.From, c.Sweep.To, c.Sweep.Step, c.Sweep.Noise)
}

// SuiteCases returns the configured cases, or the default suite if none are set.
func (c Config) SuiteCases() []generate.Case {
	if len(c.Cases) == 0 {
		return generate.DefaultSuite()
	}
	return c.Cases
}

// Generator returns a generator seeded from Seed, or from the clock if Seed is 0.
func (c Config) Generator() *generate.Generator {
	if c.Seed == 0 {
		return generate.NewRandom()
	}
	return generate.New(c.Seed)
}
