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

// Package options implements the resolver options store: a small mutable
// key/value map the host sets between requests to switch naming variants.
package options

import (
	"sync"

	"dirpx.dev/resolvx/apis"
)

// MobileView enables mobile and plugin-mobile template variants.
const MobileView = "mobileView"

// Store is a concurrency-safe key/value store of resolver options.
// The zero value is ready to use.
type Store struct {
	mu sync.RWMutex
	m  map[string]any
}

// Ensure Store implements apis.OptionReader.
var _ apis.OptionReader = (*Store)(nil)

// New constructs an empty Store.
func New() *Store {
	return &Store{}
}

// Set stores value under name.
func (s *Store) Set(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]any)
	}
	s.m[name] = value
}

// Get returns the value stored under name. A nil Store holds nothing.
func (s *Store) Get(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[name]
	return v, ok
}

// Bool returns the value under name if it is a bool, false otherwise.
func (s *Store) Bool(name string) bool {
	v, _ := s.Get(name)
	b, _ := v.(bool)
	return b
}

// Clear removes every option.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = nil
}
