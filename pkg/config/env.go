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
	"github.com/kelseyhightower/envconfig"
	"gitlab.com/tozd/go/errors"
)

// 🌱 envPrefix is the prefix shared by all environment overrides,
// e.g. URPAUTIL_COUNTRY or URPAUTIL_WINDOW_START
const envPrefix = "urpautil"

// 📝 applyEnv overlays URPAUTIL_* environment variables onto cfg.
// Variables that are not set leave the existing values untouched.
func applyEnv(cfg *Config) error {
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return errors.Errorf("processing environment: %w", err)
	}
	return nil
}
