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

// Package host provides default apis.Host implementations for running the
// resolver without a framework behind it.
package host

import (
	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/utils/inflect"
)

// Nop is a Host whose defaults never resolve anything and leave names
// unchanged.
type Nop struct{}

// Ensure Nop implements apis.Host.
var _ apis.Host = Nop{}

// Normalize returns fullName unchanged.
func (Nop) Normalize(fullName string) string { return fullName }

// Resolve never resolves.
func (Nop) Resolve(apis.ParsedName) (any, bool) { return nil, false }

// Template never resolves.
func (Nop) Template(apis.ParsedName) (any, bool) { return nil, false }

// Templates is a Host that reproduces the framework's default template
// lookup: the name with dots as slashes, then its decamelized form.
type Templates struct {
	Nop
	Registry apis.TemplateRegistry
}

// Ensure Templates implements apis.Host.
var _ apis.Host = Templates{}

// Template looks up the slash form of the name, then its decamelized form.
func (h Templates) Template(p apis.ParsedName) (any, bool) {
	if h.Registry == nil {
		return nil, false
	}
	name := inflect.DotsToSlashes(p.NameWithoutType)
	if v, ok := h.Registry.Lookup(name); ok && v != nil {
		return v, true
	}
	if v, ok := h.Registry.Lookup(inflect.Decamelize(name)); ok && v != nil {
		return v, true
	}
	return nil, false
}
