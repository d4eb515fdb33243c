package hologram

import (
	"errors"
	"fmt"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("hologram: invalid config")

// DefaultCooldownTicks is the number of ticks after an accepted click
// during which further clicks are ignored.
const DefaultCooldownTicks = 5

// Config is the host-tunable behavior of the library.
type Config struct {
	// SuppressWorldInteractions is the master switch for blocking world
	// actions while the user is engaged with a panel.
	SuppressWorldInteractions bool `yaml:"suppress_world_interactions"`
	SuppressBlockBreaking     bool `yaml:"suppress_block_breaking"`
	SuppressEntityAttacking   bool `yaml:"suppress_entity_attacking"`
	SuppressBlockUsage        bool `yaml:"suppress_block_usage"`

	InteractionCooldownTicks int     `yaml:"interaction_cooldown_ticks"`
	MaxRayDistance           float64 `yaml:"max_ray_distance"`

	// Debug enables per-tick timing logs and geometry checks.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		SuppressWorldInteractions: true,
		SuppressBlockBreaking:     true,
		SuppressEntityAttacking:   true,
		SuppressBlockUsage:        false,
		InteractionCooldownTicks:  DefaultCooldownTicks,
		MaxRayDistance:            DefaultMaxRayDistance,
	}
}

// ParseConfig decodes YAML over DefaultConfig, so absent keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if c.InteractionCooldownTicks < 0 {
		return fmt.Errorf("%w: interaction_cooldown_ticks %d is negative", ErrInvalidConfig, c.InteractionCooldownTicks)
	}
	if c.MaxRayDistance <= 0 {
		return fmt.Errorf("%w: max_ray_distance %v must be positive", ErrInvalidConfig, c.MaxRayDistance)
	}
	return nil
}

// ConfigStore holds the active Config. A host config goroutine may Store
// while the tick thread and world hooks Load.
type ConfigStore struct {
	p atomic.Pointer[Config]
}

// NewConfigStore creates a store holding cfg. cfg is not validated.
func NewConfigStore(cfg Config) *ConfigStore {
	s := &ConfigStore{}
	s.p.Store(&cfg)
	return s
}

// Load returns a copy of the active config.
func (s *ConfigStore) Load() Config {
	return *s.p.Load()
}

// Store validates and installs cfg.
func (s *ConfigStore) Store(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.p.Store(&cfg)
	return nil
}
