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
)

// NewBuiltinStrategy creates an apis.Strategy that answers requests for name
// with the module at modulePath and nothing else. Other names go to next.
func NewBuiltinStrategy(name, modulePath string, modules apis.ModuleRegistry, next apis.Strategy) apis.Strategy {
	return &builtinStrategy{name: name, path: modulePath, modules: modules, next: next}
}

// builtinStrategy pins a single name to a fixed module.
type builtinStrategy struct {
	name    string
	path    string
	modules apis.ModuleRegistry
	next    apis.Strategy
}

// Ensure builtinStrategy implements apis.Strategy.
var _ apis.Strategy = (*builtinStrategy)(nil)

// TryResolve settles p itself when it names the builtin, so a missing fixed
// module is a miss rather than a lookup elsewhere. Other names go to next.
func (s *builtinStrategy) TryResolve(p apis.ParsedName) (any, bool) {
	if s.name != "" && p.NameWithoutType == s.name {
		if s.modules == nil {
			return nil, false
		}
		return Load(s.modules, s.path)
	}
	if s.next == nil {
		return nil, false
	}
	return s.next.TryResolve(p)
}

// NewRouterStrategy creates an apis.Strategy that resolves the application
// router from "<namespace>/router".
func NewRouterStrategy(namespace string, modules apis.ModuleRegistry) apis.Strategy {
	return &routerStrategy{path: namespace + "/router", modules: modules}
}

type routerStrategy struct {
	path    string
	modules apis.ModuleRegistry
}

// TryResolve loads the router module if registered.
func (s *routerStrategy) TryResolve(apis.ParsedName) (any, bool) {
	if s.modules == nil || !s.modules.Has(s.path) {
		return nil, false
	}
	return Load(s.modules, s.path)
}
