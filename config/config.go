// Package config loads the storefront configuration from YAML with
// environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// Config is the full storefront configuration.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	} `json:"http" yaml:"http"`

	// Backend is the remote storefront API every page fetches from.
	Backend struct {
		BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
		RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
		UserAgent      string        `json:"userAgent" yaml:"userAgent"`
	} `json:"backend" yaml:"backend"`

	// Session is where the bearer token and user id are persisted.
	Session struct {
		Path string `json:"path" yaml:"path"`
	} `json:"session" yaml:"session"`

	// Deals configures the cosmetic flash-deal countdowns.
	Deals DealsConfig `json:"deals" yaml:"deals"`

	// Fallback controls whether catalog pages substitute the built-in
	// record set when the backend fails.
	Fallback struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"fallback" yaml:"fallback"`

	GoogleOAuth struct {
		ClientID string `json:"clientId" yaml:"clientId"`
	} `json:"googleOAuth" yaml:"googleOAuth"`

	Metrics struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"metrics" yaml:"metrics"`
}

// Log configures the process logger.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DealsConfig bounds the random countdown assignment.
type DealsConfig struct {
	MinSeconds int           `json:"minSeconds" yaml:"minSeconds"`
	MaxSeconds int           `json:"maxSeconds" yaml:"maxSeconds"`
	Tick       time.Duration `json:"tick" yaml:"tick"`
}

// LoadWithEnv loads <name>.yaml through koanf and layers environment
// variables on top. BACKEND_BASEURL overrides backend.baseUrl; matching is
// case-insensitive so the env spelling does not need to mirror the YAML
// casing.
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", name)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

// New loads the storefront config and applies defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = "100KB"
	}
	if c.Backend.RequestTimeout == 0 {
		c.Backend.RequestTimeout = 15 * time.Second
	}
	if c.Backend.UserAgent == "" {
		c.Backend.UserAgent = "storefront-gateway"
	}
	if c.Session.Path == "" {
		c.Session.Path = filepath.Join(os.TempDir(), "storefront-session.json")
	}
	if c.Deals.MinSeconds == 0 {
		c.Deals.MinSeconds = 7200
	}
	if c.Deals.MaxSeconds == 0 {
		c.Deals.MaxSeconds = 43200
	}
	if c.Deals.Tick == 0 {
		c.Deals.Tick = time.Second
	}
}
