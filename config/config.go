// Package config loads the sproute TOML configuration: logging, engine
// behaviour and an optional static topology.
//
//	[logging]
//	level = "info"      # debug|info|warn|error
//	format = "text"     # text|json
//	logfile = ""        # empty → stderr
//	max_log_size = 100  # megabytes
//	max_log_age = 30    # days
//
//	[routing]
//	trace_relaxations = false
//	verify = false
//	metrics = true
//
//	[topology]
//	source = 1
//	switches = [1, 2, 3]
//	links = [[1, 2], [2, 3]]
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/sproute/topology"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	defaultLevel   = "info"
	defaultFormat  = "text"
	defaultMaxSize = 100
	defaultMaxAge  = 30
)

// Config aggregates all settings.
type Config struct {
	Logging  Logging  `toml:"logging"`
	Routing  Routing  `toml:"routing"`
	Topology Topology `toml:"topology"`
}

// Logging controls the slog handler and optional rotating log file.
type Logging struct {
	Level         string `toml:"level"`
	Format        string `toml:"format"` // text|json
	Logfile       string `toml:"logfile"`
	MaxSize       int    `toml:"max_log_size"`
	MaxAge        int    `toml:"max_log_age"`
	IncludeCaller bool   `toml:"include_caller"`
}

// Routing controls the engine.
type Routing struct {
	TraceRelaxations bool `toml:"trace_relaxations"`
	Verify           bool `toml:"verify"`
	Metrics          bool `toml:"metrics"`
}

// Topology is a static snapshot, used when no controller supplies one.
type Topology struct {
	Source   uint64     `toml:"source"`
	Switches []uint64   `toml:"switches"`
	Links    [][]uint64 `toml:"links"` // each entry is [src, dst]
}

// Defaults returns the configuration used for keys absent from the file.
func Defaults() Config {
	return Config{
		Logging: Logging{
			Level:   defaultLevel,
			Format:  defaultFormat,
			MaxSize: defaultMaxSize,
			MaxAge:  defaultMaxAge,
		},
		Routing: Routing{Metrics: true},
	}
}

// Load decodes the TOML file at path over Defaults and validates it.
// A relative logfile is resolved against the directory of path.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("%w: no configuration file provided", ErrInvalidConfig)
	}
	cfg := Defaults()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: could not decode %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if f := cfg.Logging.Logfile; f != "" && !filepath.IsAbs(f) {
		cfg.Logging.Logfile = filepath.Join(filepath.Dir(path), f)
	}

	return cfg, cfg.Validate()
}

// Decode parses TOML text over Defaults and validates it.
func Decode(text string) (Config, error) {
	cfg := Defaults()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: could not decode: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(names, ", "))
}

// Validate checks enumerated values, sizes and link shapes.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Logging.MaxSize < 0 || c.Logging.MaxAge < 0 {
		return fmt.Errorf("%w: negative log rotation limits", ErrInvalidConfig)
	}
	for i, l := range c.Topology.Links {
		if len(l) != 2 {
			return fmt.Errorf("%w: topology.links[%d] has %d elements, want 2", ErrInvalidConfig, i, len(l))
		}
	}

	return nil
}

// Snapshot converts the static topology into a topology.Snapshot.
func (t Topology) Snapshot() topology.Snapshot {
	s := topology.Snapshot{
		Switches: make([]topology.SwitchID, len(t.Switches)),
		Links:    make([]topology.Link, 0, len(t.Links)),
	}
	for i, id := range t.Switches {
		s.Switches[i] = topology.SwitchID(id)
	}
	for _, l := range t.Links {
		if len(l) != 2 {
			continue
		}
		s.Links = append(s.Links, topology.Link{Src: topology.SwitchID(l[0]), Dst: topology.SwitchID(l[1])})
	}

	return s
}
