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
Package status renders check results for humans.

🎯 Purpose:
- Classifies results into valid, invalid and error outcomes
- Formats per-result lines with colored prefixes
- Tallies batches and renders the summary as a table

📝 Design Philosophy:
Everything printed here is for eyes, not for scripts. Machine consumers
take the check.Result values directly; this package only decides colors,
symbols and column widths, and mirrors what it prints to the context
logger so a failed robot run can be reconstructed from logs alone.
*/
package status
