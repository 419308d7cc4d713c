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

package strategy

import (
	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/suffix"
	"dirpx.dev/resolvx/utils/inflect"
)

// NewModuleStrategy creates an apis.Strategy that finds the module whose path
// ends with "<type>s/<name>" (dasherized), so modules defined anywhere,
// plugins included, resolve by their trailing path.
func NewModuleStrategy(index *suffix.Index, modules apis.ModuleRegistry) apis.Strategy {
	return &moduleStrategy{index: index, modules: modules}
}

// moduleStrategy consults the suffix index, then loads the hit.
type moduleStrategy struct {
	index   *suffix.Index
	modules apis.ModuleRegistry
}

// Ensure moduleStrategy implements apis.Strategy.
var _ apis.Strategy = (*moduleStrategy)(nil)

// TryResolve loads the best suffix match for p.
func (s *moduleStrategy) TryResolve(p apis.ParsedName) (any, bool) {
	if s.index == nil || s.modules == nil || p.Type == "" {
		return nil, false
	}
	path, ok := s.index.Lookup(SuffixFor(p))
	if !ok {
		return nil, false
	}
	return Load(s.modules, path)
}

// SuffixFor returns the dasherized suffix query for p.
func SuffixFor(p apis.ParsedName) string {
	return inflect.Dasherize(p.Type + "s/" + p.NameWithoutType)
}

// Load synchronously loads path and unwraps its default export.
// A missing or nil module is not a match.
func Load(modules apis.ModuleRegistry, path string) (any, bool) {
	m, ok := modules.Load(path)
	if !ok || m == nil {
		return nil, false
	}
	if d, ok := m.(apis.DefaultExporter); ok {
		if v := d.DefaultExport(); v != nil {
			return v, true
		}
	}
	return m, true
}
