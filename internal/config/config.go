package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Entry points accepted by Options.Entry.
const (
	EntryProgram    = "program"    // declarations then statements
	EntryStatements = "statements" // statements only
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TINY_"

// Format is the syntax of an options file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Options holds the scan/parse switches. All trace flags default to false.
type Options struct {
	EchoSource bool   `toml:"echo_source" yaml:"echo_source"`
	TraceScan  bool   `toml:"trace_scan" yaml:"trace_scan"`
	TraceParse bool   `toml:"trace_parse" yaml:"trace_parse"`
	Entry      string `toml:"entry" yaml:"entry"`
	LogLevel   string `toml:"log_level" yaml:"log_level"`
}

func Default() Options {
	return Options{
		Entry:    EntryProgram,
		LogLevel: "info",
	}
}

// DetectFormat picks the file format from the extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}
}

// Load reads options from a TOML or YAML file. Keys missing from the file keep
// their default values.
func Load(path string) (Options, error) {
	opts := Default()
	if err := opts.LoadFile(path); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

// LoadFile overwrites o with the keys present in the file at path.
func (o *Options) LoadFile(path string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := Parse(content, format, o); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Resolve layers the options: defaults, then TINY_* environment variables,
// then the file at path when path is not empty.
func Resolve(path string) (Options, error) {
	return resolve(path, os.LookupEnv)
}

func resolve(path string, lookup func(string) (string, bool)) (Options, error) {
	opts := Default()
	if err := opts.applyEnv(lookup); err != nil {
		return opts, err
	}
	if path != "" {
		if err := opts.LoadFile(path); err != nil {
			return opts, err
		}
	}
	return opts, opts.Validate()
}

// Parse decodes content into opts, overwriting only the keys present.
func Parse(content []byte, format Format, opts *Options) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), opts); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, opts); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

// ApplyEnv overrides options from TINY_* environment variables.
func (o *Options) ApplyEnv() error {
	return o.applyEnv(os.LookupEnv)
}

func (o *Options) applyEnv(lookup func(string) (string, bool)) error {
	flags := []struct {
		key string
		dst *bool
	}{
		{"ECHO_SOURCE", &o.EchoSource},
		{"TRACE_SCAN", &o.TraceScan},
		{"TRACE_PARSE", &o.TraceParse},
	}
	for _, f := range flags {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = b
	}
	if v, ok := lookup(EnvPrefix + "ENTRY"); ok && v != "" {
		o.Entry = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		o.LogLevel = v
	}
	return o.Validate()
}

// Validate rejects unknown entry points and log levels.
func (o Options) Validate() error {
	switch o.Entry {
	case EntryProgram, EntryStatements:
	default:
		return fmt.Errorf("invalid entry %q (want %q or %q)", o.Entry, EntryProgram, EntryStatements)
	}
	switch strings.ToLower(o.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", o.LogLevel)
	}
	return nil
}
