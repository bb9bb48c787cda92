package tutor

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultThreshold  = 0.5
	DefaultMaxResults = 20
	DefaultMaxChars   = 4000
	DefaultCacheSize  = 256
	DefaultSet        = "com"
	DefaultTimeout    = 30 * time.Second
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// DefaultConfig loads the competitive IMF set only.
func DefaultConfig() *Config {
	cfg := &Config{
		Sets: []SetConfig{{Code: DefaultSet, Format: FormatIMF}},
	}
	cfg.applyDefaults()
	return cfg
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	Search SearchConfig `toml:"search"`
	Fetch  FetchConfig  `toml:"fetch"`
	Sets   []SetConfig  `toml:"sets"`
	Spaces SpacesConfig `toml:"spaces"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	// Format is color (the default), plain or json.
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type SearchConfig struct {
	Threshold  float64 `toml:"threshold"`
	MaxResults int     `toml:"max_results"`
	MaxChars   int     `toml:"max_chars"`
	CacheSize  int     `toml:"cache_size"`
	DefaultSet string  `toml:"default_set"`
}

type FetchConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
	Concurrency    int `toml:"concurrency"`
}

func (c FetchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type SetFormat string

const (
	FormatIMF SetFormat = "imf"
	FormatCTI SetFormat = "cti"
)

// SetConfig describes where a set is loaded from. Locations are http(s)
// URLs or spaces://key for objects in the configured Spaces bucket.
type SetConfig struct {
	Code   string    `toml:"code"`
	Format SetFormat `toml:"format"`
	URL    string    `toml:"url"`
	// SigilsURL is the sigil sheet of cti sets.
	SigilsURL string `toml:"sigils_url"`
}

type SpacesConfig struct {
	Key    string `toml:"key"`
	Secret string `toml:"secret"`
	Region string `toml:"region"`
	Bucket string `toml:"bucket"`
	Root   string `toml:"root"`
}

func (c SpacesConfig) Enabled() bool {
	return c.Bucket != ""
}

func (c *Config) applyDefaults() {
	if c.Search.Threshold <= 0 {
		c.Search.Threshold = DefaultThreshold
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = DefaultMaxResults
	}
	if c.Search.MaxChars <= 0 {
		c.Search.MaxChars = DefaultMaxChars
	}
	if c.Search.CacheSize <= 0 {
		c.Search.CacheSize = DefaultCacheSize
	}
	if c.Search.DefaultSet == "" {
		c.Search.DefaultSet = DefaultSet
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		c.Fetch.TimeoutSeconds = int(DefaultTimeout / time.Second)
	}
}
