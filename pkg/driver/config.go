package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConfigFileNames lists the file names FindConfig looks for, in order.
var ConfigFileNames = []string{"onec.yml", "onec.yaml", "onec.toml"}

// ErrConfigNotFound is returned by FindConfig when no config file exists in
// the search path.
var ErrConfigNotFound = errors.New("config: no onec.yml, onec.yaml or onec.toml found")

// Format selects how diagnostics are printed.
type Format string

const (
	FormatHuman Format = "human"
	FormatCodes Format = "codes"
)

// ColorMode mirrors diagnostics.ColorMode at the config layer.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the parsed project configuration.
type Config struct {
	Path        string
	Diagnostics DiagnosticsConfig
	Log         LogConfig
}

type DiagnosticsConfig struct {
	Format    Format    `yaml:"format" toml:"format"`
	Color     ColorMode `yaml:"color" toml:"color"`
	MaxErrors int       `yaml:"max_errors" toml:"max_errors"`
}

type LogConfig struct {
	Level LogLevel `yaml:"level" toml:"level"`
}

// DefaultConfig is used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Diagnostics: DiagnosticsConfig{Format: FormatHuman, Color: ColorAuto},
		Log:         LogConfig{Level: LogWarn},
	}
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type configFile struct {
	Diagnostics *DiagnosticsConfig `yaml:"diagnostics" toml:"diagnostics"`
	Log         *LogConfig         `yaml:"log" toml:"log"`
}

// LoadConfig parses a YAML or TOML config file, chosen by extension, and
// validates it. Missing sections keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: resolve %s", path)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "config: open %s", absPath)
	}
	defer file.Close()

	var raw configFile
	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".toml":
		meta, err := toml.NewDecoder(file).Decode(&raw)
		if err != nil {
			return nil, errors.Wrapf(err, "config: parse %s", absPath)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			var errs ValidationError
			for _, key := range undecoded {
				errs.Issues = append(errs.Issues, fmt.Sprintf("unknown key %q", key.String()))
			}
			return nil, &errs
		}
	default:
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(err, "config: parse %s", absPath)
		}
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cf configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	if d := cf.Diagnostics; d != nil {
		if d.Format != "" {
			cfg.Diagnostics.Format = Format(strings.TrimSpace(string(d.Format)))
		}
		if d.Color != "" {
			cfg.Diagnostics.Color = ColorMode(strings.TrimSpace(string(d.Color)))
		}
		cfg.Diagnostics.MaxErrors = d.MaxErrors
	}
	if l := cf.Log; l != nil && l.Level != "" {
		cfg.Log.Level = LogLevel(strings.ToLower(strings.TrimSpace(string(l.Level))))
	}
	return cfg
}

func (c *Config) validate() error {
	var errs ValidationError
	if !c.Diagnostics.Format.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("diagnostics.format: unsupported value %q (want human or codes)", c.Diagnostics.Format))
	}
	if !c.Diagnostics.Color.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("diagnostics.color: unsupported value %q (want auto, always or never)", c.Diagnostics.Color))
	}
	if c.Diagnostics.MaxErrors < 0 {
		errs.Issues = append(errs.Issues, "diagnostics.max_errors must not be negative")
	}
	if !c.Log.Level.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("log.level: unsupported value %q", c.Log.Level))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (f Format) IsValid() bool {
	switch f {
	case FormatHuman, FormatCodes:
		return true
	}
	return false
}

func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// FindConfig walks from start up to the filesystem root and returns the
// first config file found.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrapf(err, "config: resolve start directory %q", start)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", errors.Wrapf(err, "config: stat %s", candidate)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}
		dir = parent
	}
}

// ResolveConfig loads explicit when set, otherwise the nearest config above
// start, otherwise the defaults.
func ResolveConfig(explicit, start string) (*Config, error) {
	if explicit != "" {
		return LoadConfig(explicit)
	}
	path, err := FindConfig(start)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return LoadConfig(path)
}
