package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "GBPREP"

type Peptides struct {
	Experiments      []string `mapstructure:"experiments"`
	Color            string   `mapstructure:"color"`
	AllOffset        int      `mapstructure:"all_offset"`
	ExperimentOffset int      `mapstructure:"experiment_offset"`
	SequenceID       int      `mapstructure:"sequence_id"`
}

type Config struct {
	Database string   `mapstructure:"database"`
	LogLevel string   `mapstructure:"log_level"`
	Peptides Peptides `mapstructure:"peptides"`

	// DotenvLoaded is false when no .env file was found.
	DotenvLoaded bool `mapstructure:"-"`
}

// Flags that map onto config keys when set on the command line.
var flagKeys = map[string]string{
	"db":        "database",
	"log-level": "log_level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("peptides.experiments", []string{})
	v.SetDefault("peptides.color", "0x80ff8080")
	v.SetDefault("peptides.all_offset", 70)
	v.SetDefault("peptides.experiment_offset", 58)
	v.SetDefault("peptides.sequence_id", 1)
}

// Load layers defaults, an optional config file, .env, GBPREP_* variables
// and command-line flags, in increasing precedence.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}

	// Existing environment wins over .env, same as godotenv.Load itself.
	cfg.DotenvLoaded = godotenv.Load() == nil

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("gbprep")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// DatabasePath prefers an explicit path (a positional argument) over config.
func (c *Config) DatabasePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if c.Database != "" {
		return c.Database, nil
	}
	return "", fmt.Errorf("no database given: pass it as an argument, --db, or %s_DATABASE", EnvPrefix)
}
