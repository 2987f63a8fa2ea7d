// Copyright 2026 UltimateRPA Tools
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

package config

import (
	"context"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/ultimaterpa/urpautils/pkg/holiday"
	"github.com/ultimaterpa/urpautils/pkg/timewindow"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// 🗺️ parsers is the list of available parsers
var parsers []Parser

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🕐 Window bounds the part of the day the robot may run in
type Window struct {
	Start string `json:"start" yaml:"start" toml:"start" validate:"omitempty,timeofday"`
	End   string `json:"end" yaml:"end" toml:"end" validate:"omitempty,timeofday"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Country       string   `json:"country" yaml:"country" toml:"country" validate:"omitempty,holidaycountry"`
	Window        Window   `json:"window" yaml:"window" toml:"window"`
	ExtraHolidays []string `json:"extra_holidays" yaml:"extra_holidays" toml:"extra_holidays" envconfig:"EXTRA_HOLIDAYS" validate:"dive,datetime=2006-01-02"`
	Async         bool     `json:"async" yaml:"async" toml:"async"`
	LogLevel      string   `json:"log_level" yaml:"log_level" toml:"log_level" envconfig:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
}

// 🎯 Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Country:  "CZ",
		Window:   Window{Start: timewindow.DefaultStart, End: timewindow.DefaultEnd},
		LogLevel: "info",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// timeofday accepts HH:MM:SS wall clock values.
	_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04:05", fl.Field().String())
		return err == nil
	})
	// holidaycountry accepts any country with a built in holiday calendar.
	_ = v.RegisterValidation("holidaycountry", func(fl validator.FieldLevel) bool {
		_, err := holiday.ForCountry(fl.Field().String())
		return err == nil
	})
	return v
}

// 🔍 Validate fills defaults and checks the configuration is usable
func (cfg *Config) Validate() error {
	if cfg.Country == "" {
		cfg.Country = Default().Country
	}
	if cfg.Window.Start == "" {
		cfg.Window.Start = timewindow.DefaultStart
	}
	if cfg.Window.End == "" {
		cfg.Window.End = timewindow.DefaultEnd
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
	if err := validate.Struct(cfg); err != nil {
		return errors.Errorf("validating config: %w", err)
	}
	return nil
}

// 🗓️ HolidayLookup returns the holiday lookup described by the config:
// the country calendar overlaid with the configured extra holidays
func (cfg *Config) HolidayLookup() holiday.Lookup {
	extra := make([]time.Time, 0, len(cfg.ExtraHolidays))
	for _, value := range cfg.ExtraHolidays {
		// Validate has already checked the format.
		if day, err := time.Parse("2006-01-02", value); err == nil {
			extra = append(extra, day)
		}
	}
	return func(country string) (holiday.Calendar, error) {
		cal, err := holiday.ForCountry(country)
		if err != nil {
			return nil, err
		}
		if len(extra) == 0 {
			return cal, nil
		}
		return holiday.WithExtra(cal, extra...), nil
	}
}

// 📊 ZerologLevel maps the configured level name to a zerolog level
func (cfg *Config) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Environment wins over the file
	if err := applyEnv(cfg); err != nil {
		return nil, errors.Errorf("applying environment overrides: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// 🌱 FromEnv builds a config without a file: defaults plus URPAUTIL_*
// environment overrides
func FromEnv(ctx context.Context) (*Config, error) {
	zerolog.Ctx(ctx).Debug().Msg("no config file, using defaults and environment")

	cfg := Default()
	if err := applyEnv(cfg); err != nil {
		return nil, errors.Errorf("applying environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
