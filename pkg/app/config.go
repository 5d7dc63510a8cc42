package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/strasdat/vviz/pkg/errors"
	"github.com/strasdat/vviz/pkg/transport"
)

// Mode selects how the two sides are wired.
type Mode string

const (
	// ModeLocal runs control and presentation in one process over an
	// in-process link.
	ModeLocal Mode = "local"
	// ModeServe runs the control side as a server waiting for one
	// presentation client.
	ModeServe Mode = "serve"
	// ModeConnect runs the presentation side as a client of a remote
	// control server.
	ModeConnect Mode = "connect"
)

// Config represents the optional vviz.yaml configuration.
type Config struct {
	Mode       string `yaml:"mode,omitempty"`
	Address    string `yaml:"address,omitempty"`
	TickMillis int    `yaml:"tickMillis,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Mode    Mode
	Address string
	Tick    time.Duration
}

func configErr(op string, err error) error {
	return &errors.VizError{Op: op, Kind: errors.KindConfig, Err: err, Timestamp: time.Now()}
}

// LoadOptional reads vviz.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "vviz.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configErr("app.LoadOptional", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configErr("app.LoadOptional", fmt.Errorf("parse vviz.yaml: %w", err))
	}
	return &cfg, nil
}

// Resolve loads vviz.yaml (if present) and resolves defaults: local
// mode, 127.0.0.1:5020 for remote links, the transport's default tick.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve validates the config and fills in defaults.
func (c *Config) Resolve() (*Resolved, error) {
	mode := Mode(strings.TrimSpace(c.Mode))
	if mode == "" {
		mode = ModeLocal
	}
	switch mode {
	case ModeLocal, ModeServe, ModeConnect:
	default:
		return nil, configErr("app.Resolve", fmt.Errorf("unknown mode %q", c.Mode))
	}

	address := strings.TrimSpace(c.Address)
	if address == "" && mode != ModeLocal {
		address = "127.0.0.1:5020"
	}

	tick := transport.DefaultTick
	if c.TickMillis < 0 {
		return nil, configErr("app.Resolve", fmt.Errorf("tickMillis must be >= 0, got %d", c.TickMillis))
	}
	if c.TickMillis > 0 {
		tick = time.Duration(c.TickMillis) * time.Millisecond
	}

	return &Resolved{Mode: mode, Address: address, Tick: tick}, nil
}
