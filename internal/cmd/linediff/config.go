// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"znkr.io/linediff"
)

// Config is the configuration of a comparison. It's assembled from defaults, the config file,
// environment variables, and flags, in increasing priority.
type Config struct {
	IgnoreWhitespace bool   `mapstructure:"ignore_whitespace"`
	IgnoreCase       bool   `mapstructure:"ignore_case"`
	Format           string `mapstructure:"format"`
	Lang             string `mapstructure:"lang"`
	Context          int    `mapstructure:"context"`
	Width            int    `mapstructure:"width"`
	MaxLines         int    `mapstructure:"max_lines"`
	Color            string `mapstructure:"color"`
	LogLevel         string `mapstructure:"log_level"`
}

const configName = "linediff"

// Config keys and the flags they are bound to.
var flagKeys = map[string]string{
	"ignore_whitespace": "ignore-whitespace",
	"ignore_case":       "ignore-case",
	"format":            "format",
	"lang":              "lang",
	"context":           "context",
	"width":             "width",
	"max_lines":         "max-lines",
	"color":             "color",
	"log_level":         "log-level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ignore_whitespace", false)
	v.SetDefault("ignore_case", false)
	v.SetDefault("format", "term")
	v.SetDefault("lang", "")
	v.SetDefault("context", 3)
	v.SetDefault("width", 0)
	v.SetDefault("max_lines", 20000)
	v.SetDefault("color", "auto")
	v.SetDefault("log_level", "warn")
}

// loadConfig reads the configuration. If cfgFile is empty, linediff.yaml is searched for in the
// user config directory and the working directory; it's not an error if there's none. An explicitly
// named config file must exist.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("LINEDIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case "term", "html":
	default:
		return fmt.Errorf("invalid format %q, want term or html", c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q, want auto, always, or never", c.Color)
	}
	if c.Width < 0 {
		return fmt.Errorf("invalid width %d", c.Width)
	}
	if c.MaxLines <= 0 {
		return fmt.Errorf("invalid max-lines %d, must be positive", c.MaxLines)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %v", err)
	}
	return nil
}

func (c *Config) options() []linediff.Option {
	var opts []linediff.Option
	if c.IgnoreWhitespace {
		opts = append(opts, linediff.IgnoreWhitespace())
	}
	if c.IgnoreCase {
		opts = append(opts, linediff.IgnoreCase())
	}
	return opts
}

func logConfig(logger *zap.Logger, v *viper.Viper) {
	if used := v.ConfigFileUsed(); used != "" {
		if _, err := os.Stat(used); err == nil {
			logger.Info("config file loaded", zap.String("path", used))
			return
		}
	}
	logger.Debug("no config file found, using defaults, environment, and flags")
}
