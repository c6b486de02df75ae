package pkgconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config interface {
	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	Close() error
}

type viperConfig struct {
	v *viper.Viper
}

// NewViper loads a YAML file and lets environment variables override its keys,
// with dots replaced by underscores (app.tz -> APP_TZ).
func NewViper(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &viperConfig{v: v}, nil
}

// NewMap builds a Config from in-memory values. Used by tests and when no file is present.
func NewMap(values map[string]any) Config {
	v := viper.New()
	for key, value := range values {
		v.Set(key, value)
	}
	return &viperConfig{v: v}
}

func (c *viperConfig) GetString(key string) string { return c.v.GetString(key) }

func (c *viperConfig) GetBool(key string) bool { return c.v.GetBool(key) }

func (c *viperConfig) GetInt(key string) int { return c.v.GetInt(key) }

func (c *viperConfig) Close() error { return nil }
