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
Package check batches identifier validations behind a single entry point.

	+--------+     +----------+     +-------------+
	| Checks | --> |  Runner  | --> |   Results   |
	+--------+     +----------+     +-------------+
	                    |
	     +--------------+---------------+
	     |              |               |
	+----+----+   +-----+-----+   +-----+------+
	| rc      |   | ico       |   | account    |
	+---------+   +-----------+   +------------+

🎯 Purpose:
- Maps a check kind (rc, ico, account) to its validator package
- Runs batches sequentially or concurrently, preserving input order
- Tags every batch with a correlation id in the context logger

📝 Design Philosophy:
A Result distinguishes "the value is invalid" (Valid = false) from "the
check could not run" (Err set). Callers deciding robot control flow only
ever branch on Valid; Err surfaces misconfigured batches such as an
unknown kind.
*/
package check
