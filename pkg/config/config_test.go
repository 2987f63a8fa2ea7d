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
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "valid_yaml",
			filename: "config.yaml",
			config: `
country: SK
window:
  start: "08:00:00"
  end: "17:30:00"
extra_holidays:
  - "2026-12-31"
async: true
log_level: debug
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "SK", cfg.Country, "country should match")
				assert.Equal(t, "08:00:00", cfg.Window.Start, "window start should match")
				assert.Equal(t, "17:30:00", cfg.Window.End, "window end should match")
				assert.Equal(t, []string{"2026-12-31"}, cfg.ExtraHolidays, "extra holidays should match")
				assert.True(t, cfg.Async, "async should be true")
				assert.Equal(t, "debug", cfg.LogLevel, "log level should match")
			},
		},
		{
			name:     "minimal_yaml_gets_defaults",
			filename: "config.yml",
			config:   `country: US`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "US", cfg.Country, "country should match")
				assert.Equal(t, "00:00:00", cfg.Window.Start, "window start should default")
				assert.Equal(t, "23:59:59", cfg.Window.End, "window end should default")
				assert.Equal(t, "info", cfg.LogLevel, "log level should default")
				assert.False(t, cfg.Async, "async should default to false")
			},
		},
		{
			name:     "valid_json",
			filename: "config.json",
			config:   `{"country": "cz", "window": {"start": "06:00:00", "end": "22:00:00"}}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "cz", cfg.Country, "country should match")
				assert.Equal(t, "06:00:00", cfg.Window.Start, "window start should match")
			},
		},
		{
			name:     "valid_toml",
			filename: "config.toml",
			config: `
country = "CZ"
log_level = "warn"

[window]
start = "07:00:00"
end = "19:00:00"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "CZ", cfg.Country, "country should match")
				assert.Equal(t, "warn", cfg.LogLevel, "log level should match")
				assert.Equal(t, "07:00:00", cfg.Window.Start, "window start should match")
				assert.Equal(t, "19:00:00", cfg.Window.End, "window end should match")
			},
		},
		{
			name:     "valid_hcl",
			filename: "config.hcl",
			config: `
country = "SK"
extra_holidays = ["2026-07-03"]

window {
  start = "09:00:00"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "SK", cfg.Country, "country should match")
				assert.Equal(t, []string{"2026-07-03"}, cfg.ExtraHolidays, "extra holidays should match")
				assert.Equal(t, "09:00:00", cfg.Window.Start, "window start should match")
				assert.Equal(t, "23:59:59", cfg.Window.End, "window end should default")
			},
		},
		{
			name:        "unknown_country",
			filename:    "config.yaml",
			config:      `country: DE`,
			wantErr:     true,
			errContains: "holidaycountry",
		},
		{
			name:        "malformed_window",
			filename:    "config.yaml",
			config:      "window:\n  start: \"25:00:00\"",
			wantErr:     true,
			errContains: "timeofday",
		},
		{
			name:        "malformed_extra_holiday",
			filename:    "config.yaml",
			config:      "extra_holidays:\n  - \"31.12.2026\"",
			wantErr:     true,
			errContains: "datetime",
		},
		{
			name:        "unknown_field",
			filename:    "config.yaml",
			config:      `countryy: CZ`,
			wantErr:     true,
			errContains: "parsing",
		},
		{
			name:        "unknown_extension",
			filename:    "config.ini",
			config:      `country = CZ`,
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, tt.filename)
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := Load(ctx, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	t.Setenv("URPAUTIL_COUNTRY", "US")
	t.Setenv("URPAUTIL_WINDOW_START", "10:00:00")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("country: CZ\nwindow:\n  start: \"08:00:00\"\n  end: \"18:00:00\"\n"), 0644)
	require.NoError(t, err, "writing config file should succeed")

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())
	cfg, err := Load(ctx, configPath)
	require.NoError(t, err, "Load should succeed")

	assert.Equal(t, "US", cfg.Country, "environment should override file country")
	assert.Equal(t, "10:00:00", cfg.Window.Start, "environment should override window start")
	assert.Equal(t, "18:00:00", cfg.Window.End, "file value should survive when env is unset")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("URPAUTIL_COUNTRY", "SK")
	t.Setenv("URPAUTIL_EXTRA_HOLIDAYS", "2026-01-02,2026-01-03")
	t.Setenv("URPAUTIL_ASYNC", "true")

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())
	cfg, err := FromEnv(ctx)
	require.NoError(t, err, "FromEnv should succeed")

	assert.Equal(t, "SK", cfg.Country, "country should come from environment")
	assert.Equal(t, []string{"2026-01-02", "2026-01-03"}, cfg.ExtraHolidays, "extra holidays should split on commas")
	assert.True(t, cfg.Async, "async should come from environment")
	assert.Equal(t, "00:00:00", cfg.Window.Start, "window start should default")
}

func TestFromEnv_Defaults(t *testing.T) {
	ctx := zerolog.New(os.Stderr).WithContext(context.Background())
	cfg, err := FromEnv(ctx)
	require.NoError(t, err, "FromEnv should succeed")

	assert.Equal(t, "CZ", cfg.Country, "country should default to CZ")
	assert.Equal(t, "00:00:00", cfg.Window.Start, "window start should default")
	assert.Equal(t, "23:59:59", cfg.Window.End, "window end should default")
	assert.Equal(t, "info", cfg.LogLevel, "log level should default to info")
}

func TestHolidayLookup(t *testing.T) {
	cfg := Default()
	cfg.ExtraHolidays = []string{"2026-08-26"}

	lookup := cfg.HolidayLookup()
	cal, err := lookup("CZ")
	require.NoError(t, err, "lookup should succeed for CZ")

	assert.True(t, cal.IsHoliday(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)), "extra holiday should be observed")
	assert.True(t, cal.IsHoliday(time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)), "built in holidays should survive the overlay")
	assert.False(t, cal.IsHoliday(time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)), "ordinary days stay ordinary")

	_, err = lookup("XX")
	assert.Error(t, err, "unknown countries should still fail")
}

func TestZerologLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, zerolog.InfoLevel, cfg.ZerologLevel(), "default level should be info")

	cfg.LogLevel = "trace"
	assert.Equal(t, zerolog.TraceLevel, cfg.ZerologLevel(), "trace should map to trace")

	cfg.LogLevel = "nonsense"
	assert.Equal(t, zerolog.InfoLevel, cfg.ZerologLevel(), "unparseable levels fall back to info")
}

func TestGetParser(t *testing.T) {
	tests := []struct {
		filename string
		want     any
	}{
		{"config.yaml", &YAMLParser{}},
		{"config.yml", &YAMLParser{}},
		{"config.json", &JSONParser{}},
		{"config.toml", &TOMLParser{}},
		{"config.hcl", &HCLParser{}},
		{"config.txt", nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			p := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, p, "no parser should match")
				return
			}
			assert.IsType(t, tt.want, p, "parser type should match extension")
		})
	}
}
