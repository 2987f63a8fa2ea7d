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

/*
Package config manages configuration parsing and validation for urpautil.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	    +------+------+------+------+
	    |      |             |      |
	+---+--+ +-+--+       +--+-+ +--+--+
	| YAML | |JSON|       |TOML| | HCL |
	+------+ +----+       +----+ +-----+

🎯 Purpose:
- Loads robot settings from YAML, JSON, TOML or HCL files
- Overlays URPAUTIL_* environment variables on top of the file
- Validates country codes, time-of-day bounds and extra holiday dates
- Provides the holiday lookup and log level the rest of the tool runs with

🔄 Flow:
1. Reads configuration from file (or starts from defaults when no file exists)
2. Parses format-specific syntax via the registered Parser
3. Applies environment overrides
4. Validates and fills defaults

🤝 Interfaces:
- Parser: Format-specific parsing
- Config: Type-safe config access

📝 Design Philosophy:
The config package is the source of truth for all configuration. It keeps
format handling behind the Parser registry so the rest of the tool only
ever sees a validated Config, and it never fails open: a value that does
not validate stops the run before any check happens.
*/
package config
