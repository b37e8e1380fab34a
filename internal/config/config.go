package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Output settings
	Output string `mapstructure:"output"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`

	// Selection
	Filter string   `mapstructure:"filter"`
	Skip   []string `mapstructure:"skip"`

	// Execution settings
	FailFast bool `mapstructure:"fail-fast"`
	Progress bool `mapstructure:"progress"`
	Inspect  bool `mapstructure:"inspect"`

	MetricsTextfile string `mapstructure:"metrics-textfile"`
	LogLevel        string `mapstructure:"log-level"`
}

// LoadOptions tells Load where to look for values
type LoadOptions struct {
	ConfigFile string         // Optional config file (toml, yaml, json)
	EnvFile    string         // Optional dotenv file; missing files are ignored
	Flags      *pflag.FlagSet // Command flags; only flags the user set override other sources
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Output:   DefaultOutput,
		Format:   DefaultFormat,
		Color:    true,
		LogLevel: DefaultLogLevel,
	}
}

// Load resolves the config from, lowest to highest precedence: defaults,
// config file, environment (after loading the dotenv file), command flags.
func Load(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	v := newViper()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	if opts.Flags != nil {
		if err := v.BindPFlags(opts.Flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
		// --no-color is the inverse of the color key
		if f := opts.Flags.Lookup("no-color"); f != nil && f.Changed {
			v.Set("color", f.Value.String() != "true")
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := New()
	v.SetDefault("output", defaults.Output)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("filter", "")
	v.SetDefault("skip", []string{})
	v.SetDefault("fail-fast", false)
	v.SetDefault("progress", false)
	v.SetDefault("inspect", false)
	v.SetDefault("metrics-textfile", "")
	v.SetDefault("log-level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func (c *Config) normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Output = strings.TrimSpace(c.Output)

	// Environment values arrive as one comma separated string
	var skip []string
	for _, s := range c.Skip {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				skip = append(skip, part)
			}
		}
	}
	c.Skip = skip
}

// Validate checks option values
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	if c.Output == "" {
		return errors.New("output target is empty")
	}
	return nil
}
