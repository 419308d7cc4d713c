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

// Package suffix answers "which registered module path ends with this
// suffix" queries over a module registry.
package suffix

import (
	"strings"
	"sync"

	"dirpx.dev/resolvx/apis"
)

// Separator splits module paths into segments.
const Separator = "/"

// Index is a lazily built suffix index over the paths of a module registry.
// The trie is built on the first query and reused until Rebuild is called.
// Paths that live under the templates segment are excluded.
type Index struct {
	modules  apis.ModuleRegistry
	excluded string

	mu   sync.Mutex
	trie *Trie
}

// NewIndex constructs an Index over modules. Paths with a non-final segment
// equal to templatesSegment are never indexed; an empty templatesSegment
// disables the exclusion.
func NewIndex(modules apis.ModuleRegistry, templatesSegment string) *Index {
	return &Index{modules: modules, excluded: templatesSegment}
}

// Lookup returns the single best path ending with suffix.
func (x *Index) Lookup(suffix string) (string, bool) {
	paths := x.WithSuffix(suffix, 1)
	if len(paths) == 0 {
		return "", false
	}
	return paths[0], true
}

// WithSuffix returns up to limit indexed paths ending with suffix.
func (x *Index) WithSuffix(suffix string, limit int) []string {
	return x.load().WithSuffix(suffix, limit)
}

// Len returns the number of indexed paths, building the index if needed.
func (x *Index) Len() int {
	return x.load().Len()
}

// Rebuild drops the cached trie; the next query rebuilds it.
func (x *Index) Rebuild() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.trie = nil
}

// load returns the cached trie, building it under the lock on first use.
func (x *Index) load() *Trie {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.trie != nil {
		return x.trie
	}
	t := NewTrie(Separator)
	if x.modules != nil {
		for _, p := range x.modules.Paths() {
			if !x.isExcluded(p) {
				t.Add(p)
			}
		}
	}
	x.trie = t
	return t
}

// isExcluded reports whether p sits under a templates directory.
func (x *Index) isExcluded(p string) bool {
	if x.excluded == "" {
		return false
	}
	segs := strings.Split(p, Separator)
	for _, s := range segs[:len(segs)-1] {
		if s == x.excluded {
			return true
		}
	}
	return false
}
