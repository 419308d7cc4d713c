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

package registry_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/registry"
)

// TestConcurrentRegisterAndLoad verifies that Register/Load/Paths/Count are
// race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLoad(t *testing.T) {
	reg := registry.NewModules()

	paths := make([]string, 10)
	for i := range paths {
		paths[i] = fmt.Sprintf("discourse/components/c%d", i)
	}

	for _, p := range paths {
		if err := reg.Register(p, p); err != nil {
			t.Fatalf("register %s: %v", p, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				p := paths[i%len(paths)]
				if got, ok := reg.Load(p); !ok || got != p {
					t.Errorf("load failed for %s: ok=%v got=%v", p, ok, got)
					return
				}
				_ = reg.Count()
				_ = reg.Paths()
			}
		}()
	}

	// Writers (idempotent re-register)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(paths)
				_ = reg.Register(paths[j], paths[j])
			}
		}(w)
	}

	wg.Wait()

	if reg.Count() != len(paths) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(paths))
	}
	got := reg.Paths()
	for i, p := range paths {
		if got[i] != p {
			t.Fatalf("path order mismatch at %d: got %q want %q", i, got[i], p)
		}
	}
}

// TestResetSnapshot ensures Reset is safe and Paths returns a stable snapshot.
func TestResetSnapshot(t *testing.T) {
	reg := registry.NewModules()

	_ = reg.Register("a/b", 1)
	_ = reg.Register("a/c", 2)

	snap := reg.Paths()
	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("count after reset: got %d want 0", reg.Count())
	}
	if len(snap) != 2 || snap[0] != "a/b" || snap[1] != "a/c" {
		t.Fatalf("snapshot changed after reset: %v", snap)
	}
}

// Compile-time checks.
var (
	_ apis.ModuleRegistry   = registry.NewModules()
	_ apis.TemplateRegistry = registry.NewTemplates()
	_ apis.HelperRegistry   = registry.NewHelpers()
)
