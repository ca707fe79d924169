package pkgconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the read-only view of the application configuration.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
	Close() error
}

type Option func(v *viper.Viper)

// WithEnvBinding lets key be overridden by any of the given environment
// variables, checked in order.
func WithEnvBinding(key string, envs ...string) Option {
	return func(v *viper.Viper) {
		//nolint:errcheck,gosec // only fails on an empty key
		v.BindEnv(append([]string{key}, envs...)...)
	}
}

type viperConfig struct {
	v *viper.Viper
}

// NewViper loads the YAML file at path. Every key can also be set from the
// environment as FLIGHTSEARCH_<KEY>, with dots and dashes replaced by
// underscores.
func NewViper(path string, opts ...Option) (Config, error) {
	v := newViper(opts...)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &viperConfig{v: v}, nil
}

// NewStatic builds a Config from in-memory values. The given values take
// precedence over the environment; keys not in values can still be read from
// it.
func NewStatic(values map[string]any, opts ...Option) Config {
	v := newViper(opts...)
	for key, value := range values {
		v.Set(key, value)
	}
	return &viperConfig{v: v}
}

func newViper(opts ...Option) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("FLIGHTSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

func (c *viperConfig) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// IsSet reports whether key has a value from any source, so callers can
// tell an explicit false or zero from a missing key.
func (c *viperConfig) IsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *viperConfig) Close() error {
	return nil
}
