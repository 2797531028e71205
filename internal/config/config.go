// Package config loads the optional sparkbar configuration file.
//
// The file lives at $XDG_CONFIG_HOME/sparkbar/config.toml (or
// ~/.config/sparkbar/config.toml) unless --config names another one:
//
//	[chart]
//	type = "dual"
//	width = 200
//	height = 40
//	formats = ["svg", "png"]
//
//	[chart.colors]
//	plus = "#2e7d32"
//
//	[cache]
//	backend = "redis"
//
//	[cache.redis]
//	addr = "localhost:6379"
//	retries = 5
//
//	[server]
//	addr = ":8080"
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sparkbar/pkg/cache"
	"github.com/matzehuels/sparkbar/pkg/errors"
	"github.com/matzehuels/sparkbar/pkg/pipeline"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the whole configuration file.
type Config struct {
	Chart  pipeline.Options `toml:"chart"`
	Cache  CacheConfig      `toml:"cache"`
	Server ServerConfig     `toml:"server"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string            `toml:"backend"`
	Dir     string            `toml:"dir"`
	Redis   cache.RedisConfig `toml:"redis"`
}

// ServerConfig configures `sparkbar serve`.
type ServerConfig struct {
	Addr       string  `toml:"addr"`
	MaxHeights int     `toml:"max_heights"`
	MaxWidth   float64 `toml:"max_width"`
	MaxHeight  float64 `toml:"max_height"`
}

// Path returns the default config file location.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sparkbar", "config.toml")
}

// Load reads the config file at path. With an empty path the default
// location is used and a missing file yields the zero Config. A missing
// explicit path, a syntax error or an unknown key is INVALID_CONFIG.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
		if path == "" {
			return Config{}, nil
		}
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case "", CacheFile, CacheRedis, CacheNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %q (must be file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis.addr is required for the redis backend")
	}
	if len(c.Chart.Formats) > 0 {
		if err := pipeline.ValidateFormats(c.Chart.Formats); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "chart.formats")
		}
	}
	return nil
}
