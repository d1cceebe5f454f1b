package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/visit/errors"
)

// Job sources.
const (
	SourceGo      = "go"
	SourceWIT     = "wit"
	SourceArities = "arities"
)

// ConfigNames are the file names FindConfig looks for.
var ConfigNames = []string{"visitgen.yaml", "visitgen.yml"}

// Config represents a visitgen.yaml file.
type Config struct {
	// Jobs are run in order; a failing job does not stop the others.
	Jobs []Job `yaml:"jobs"`

	// Dir is the base for relative paths, the config file's directory.
	Dir string `yaml:"-"`
}

// Job describes one generated file.
type Job struct {
	// Source is "go", "wit" or "arities".
	Source string `yaml:"source"`

	// Path is a Go package pattern for go jobs (default ".") or the WIT JSON
	// file for wit jobs.
	Path string `yaml:"path,omitempty"`

	// Package is the Go package name of the output. Required for wit and
	// arities jobs; go jobs use the scanned package.
	Package string `yaml:"package,omitempty"`

	// Types restricts generation to these sums. Empty means every sum found.
	Types []string `yaml:"types,omitempty"`

	// Output is the generated file. go jobs default to visit_gen.go in the
	// package directory.
	Output string `yaml:"output,omitempty"`

	// Arities is the "min:max" range for arities jobs.
	Arities string `yaml:"arities,omitempty"`
}

// LoadConfig reads and parses a visitgen.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "read "+path)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses visitgen.yaml content. The path is used for error
// messages and to derive Config.Dir.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse "+path)
	}
	cfg.Dir = filepath.Dir(path)
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfig searches for visitgen.yaml starting from dir and walking up to
// the filesystem root. It returns "" and a nil error if none is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "resolve directory")
	}

	for {
		for _, name := range ConfigNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) setDefaults() {
	for i := range c.Jobs {
		j := &c.Jobs[i]
		j.Source = strings.ToLower(strings.TrimSpace(j.Source))
		if j.Source == SourceGo && j.Path == "" {
			j.Path = "."
		}
	}
}

// Validate checks the configuration for semantic errors.
func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return errors.InvalidInput(errors.PhaseConfig, []string{"jobs"}, "no jobs defined")
	}
	for i, job := range c.Jobs {
		if err := job.validate(fmt.Sprintf("jobs[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (j *Job) validate(at string) error {
	missing := func(field string) error {
		return errors.InvalidInput(errors.PhaseConfig, []string{at, field}, field+" is required for "+j.Source+" jobs")
	}

	switch j.Source {
	case SourceGo:
	case SourceWIT:
		if j.Path == "" {
			return missing("path")
		}
		if j.Package == "" {
			return missing("package")
		}
		if j.Output == "" {
			return missing("output")
		}
	case SourceArities:
		if j.Package == "" {
			return missing("package")
		}
		if j.Output == "" {
			return missing("output")
		}
		if _, _, err := ParseArities(j.Arities); err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = []string{at, "arities"}
			}
			return err
		}
	default:
		return errors.InvalidInput(errors.PhaseConfig, []string{at, "source"},
			fmt.Sprintf("unknown source %q (want go, wit or arities)", j.Source))
	}
	return nil
}

// ParseArities parses a "min:max" range such as "2:10".
func ParseArities(s string) (min, max int, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.InvalidInput(errors.PhaseConfig, nil, fmt.Sprintf("arities %q: want min:max", s))
	}
	min, err1 := strconv.Atoi(strings.TrimSpace(lo))
	max, err2 := strconv.Atoi(strings.TrimSpace(hi))
	if err1 != nil || err2 != nil {
		return 0, 0, errors.InvalidInput(errors.PhaseConfig, nil, fmt.Sprintf("arities %q: not a number", s))
	}
	if min < 2 || max > MaxArity || min > max {
		return 0, 0, errors.InvalidInput(errors.PhaseConfig, nil,
			fmt.Sprintf("arities %q outside 2:%d", s, MaxArity))
	}
	return min, max, nil
}
