/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Host is the framework side of resolution. It supplies the default
// ("parent") behavior every strategy chain falls back to.
type Host interface {
	// Normalize is the default normalization applied when no rule matches.
	Normalize(fullName string) string
	// Resolve is the default resolution for any declared type.
	Resolve(p ParsedName) (any, bool)
	// Template is the default template lookup tried first by FindTemplate.
	Template(p ParsedName) (any, bool)
}
