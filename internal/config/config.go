package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, for example WPML_AUTHOR.
const EnvPrefix = "WPML"

// DefaultEnvFile is read when no env file is named. It may be missing.
const DefaultEnvFile = ".env"

// Config holds the CLI settings.
type Config struct {
	Author   string `mapstructure:"author"`
	Indent   string `mapstructure:"indent"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"logLevel"`
}

// Formats lists the accepted tree formats.
var Formats = []string{"yaml", "json"}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("author", "")
	v.SetDefault("indent", "  ")
	v.SetDefault("format", "yaml")
	v.SetDefault("logLevel", "info")
}

// Load reads settings into v and decodes them. Defaults come first, then
// WPML_ entries of the env file, then the optional config file, then WPML_
// environment variables; flags bound to v by the caller win over all of them.
// An empty envFile means DefaultEnvFile.
func Load(v *viper.Viper, file, envFile string) (Config, error) {
	SetDefaults(v)
	if err := readEnvFile(v, envFile); err != nil {
		return Config{}, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	c.Format = strings.ToLower(c.Format)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func readEnvFile(v *viper.Viper, file string) error {
	optional := file == ""
	if optional {
		file = DefaultEnvFile
	}
	env, err := godotenv.Read(file)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading env file: %w", err)
	}
	for k, val := range env {
		if name, ok := strings.CutPrefix(k, EnvPrefix+"_"); ok {
			v.SetDefault(strings.ToLower(name), val)
		}
	}
	return nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("config: unknown format %q (expected one of: %s)", c.Format, strings.Join(Formats, ", "))
}
