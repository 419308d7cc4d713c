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

// Package registry provides in-memory module, template and helper
// registries for the resolver, and a manifest loader that fills them.
package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/resolvx/apis"
)

var (
	// ErrEmptyKey is returned when an empty path, key or name is provided.
	ErrEmptyKey = errors.New("resolvx(registry): empty key provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a key with a different value.
	ErrConflictingRegistration = errors.New("resolvx(registry): conflicting registration")
)

// Module is a loaded module with an optional default export.
type Module struct {
	// Default is the module's default export.
	Default any
	// Exports holds the module's named exports.
	Exports map[string]any
}

// DefaultExport returns m.Default.
func (m Module) DefaultExport() any {
	return m.Default
}

// Ensure Module implements apis.DefaultExporter.
var _ apis.DefaultExporter = Module{}

// store is an insertion-ordered key/value map guarded by a mutex.
type store struct {
	mu    sync.RWMutex
	m     map[string]any
	order []string
}

// put stores v under k. Re-registering a deeply equal value is a no-op;
// any other re-registration is a conflict.
func (s *store) put(k string, v any) error {
	if k == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.m[k]; ok {
		if reflect.DeepEqual(old, v) {
			return nil
		}
		return ErrConflictingRegistration
	}
	if s.m == nil {
		s.m = make(map[string]any)
	}
	s.m[k] = v
	s.order = append(s.order, k)
	return nil
}

func (s *store) get(k string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[k]
	return v, ok
}

func (s *store) keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *store) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = nil
	s.order = nil
}

// Modules is an in-memory apis.ModuleRegistry.
type Modules struct {
	s store
}

// Ensure Modules implements apis.ModuleRegistry.
var _ apis.ModuleRegistry = (*Modules)(nil)

// NewModules constructs an empty module registry.
func NewModules() *Modules {
	return &Modules{}
}

// Register associates path with a loaded module value.
func (r *Modules) Register(path string, module any) error {
	return r.s.put(path, module)
}

// Has reports whether path is registered.
func (r *Modules) Has(path string) bool {
	_, ok := r.s.get(path)
	return ok
}

// Load returns the module registered at path.
func (r *Modules) Load(path string) (any, bool) {
	return r.s.get(path)
}

// Paths returns registered paths in insertion order.
func (r *Modules) Paths() []string {
	return r.s.keys()
}

// Count returns the number of registered modules.
func (r *Modules) Count() int {
	return r.s.count()
}

// Reset clears all registered modules.
func (r *Modules) Reset() {
	r.s.reset()
}

// Templates is an in-memory apis.TemplateRegistry.
type Templates struct {
	s store
}

// Ensure Templates implements apis.TemplateRegistry.
var _ apis.TemplateRegistry = (*Templates)(nil)

// NewTemplates constructs an empty template registry.
func NewTemplates() *Templates {
	return &Templates{}
}

// Register associates key with a compiled template.
func (r *Templates) Register(key string, template any) error {
	return r.s.put(key, template)
}

// Lookup returns the template registered under key.
func (r *Templates) Lookup(key string) (any, bool) {
	return r.s.get(key)
}

// Keys returns registered template keys in insertion order.
func (r *Templates) Keys() []string {
	return r.s.keys()
}

// Count returns the number of registered templates.
func (r *Templates) Count() int {
	return r.s.count()
}

// Helpers is an in-memory apis.HelperRegistry.
type Helpers struct {
	s store
}

// Ensure Helpers implements apis.HelperRegistry.
var _ apis.HelperRegistry = (*Helpers)(nil)

// NewHelpers constructs an empty helper registry.
func NewHelpers() *Helpers {
	return &Helpers{}
}

// Register associates name with a helper.
func (r *Helpers) Register(name string, helper any) error {
	return r.s.put(name, helper)
}

// Lookup returns the helper registered under name.
func (r *Helpers) Lookup(name string) (any, bool) {
	return r.s.get(name)
}

// Count returns the number of registered helpers.
func (r *Helpers) Count() int {
	return r.s.count()
}
