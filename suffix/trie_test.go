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

package suffix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/resolvx/suffix"
)

func TestTrie_SegmentAligned(t *testing.T) {
	tr := suffix.NewTrie("/")
	tr.Add("foo/bar")
	tr.Add("foobar")

	if got := tr.WithSuffix("bar", 0); !cmp.Equal(got, []string{"foo/bar"}) {
		t.Fatalf("WithSuffix(bar): %v", got)
	}
	if got := tr.WithSuffix("oobar", 0); len(got) != 0 {
		t.Fatalf("WithSuffix(oobar): got %v, want none", got)
	}
	if got := tr.WithSuffix("foobar", 0); !cmp.Equal(got, []string{"foobar"}) {
		t.Fatalf("WithSuffix(foobar): %v", got)
	}
}

func TestTrie_OrderAndLimit(t *testing.T) {
	tr := suffix.NewTrie("/")
	for _, p := range []string{
		"discourse/components/user-card",
		"plugins/chat/components/user-card",
		"components/user-card",
		"admin/components/user-card",
	} {
		tr.Add(p)
	}

	want := []string{
		// exact match first
		"components/user-card",
		// then most recently added branch
		"admin/components/user-card",
		"plugins/chat/components/user-card",
		"discourse/components/user-card",
	}
	if diff := cmp.Diff(want, tr.WithSuffix("components/user-card", 0)); diff != "" {
		t.Fatalf("WithSuffix mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[:2], tr.WithSuffix("user-card", 2)); diff != "" {
		t.Fatalf("WithSuffix limit mismatch (-want +got):\n%s", diff)
	}
	if got := tr.WithSuffix("components/missing", 1); got != nil {
		t.Fatalf("WithSuffix(missing): got %v, want nil", got)
	}
}

func TestTrie_DuplicateAdd(t *testing.T) {
	tr := suffix.NewTrie("/")
	tr.Add("a/b")
	tr.Add("a/b")
	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}
	if got := tr.WithSuffix("a/b", 0); !cmp.Equal(got, []string{"a/b"}) {
		t.Fatalf("WithSuffix(a/b): %v", got)
	}
}

// Every path is returned for exactly the suffixes built from its own
// trailing segments.
func TestTrie_SuffixProperty(t *testing.T) {
	paths := []string{"a/b/c", "x/b/c", "b/c", "c", "a/bc", "ab/c"}
	tr := suffix.NewTrie("/")
	for _, p := range paths {
		tr.Add(p)
	}

	queries := []string{"c", "b/c", "a/b/c", "bc", "a/bc", "ab/c", "x/b/c", "b"}
	for _, q := range queries {
		got := map[string]bool{}
		for _, p := range tr.WithSuffix(q, 0) {
			got[p] = true
		}
		for _, p := range paths {
			want := p == q || len(p) > len(q) && p[len(p)-len(q)-1:] == "/"+q
			if got[p] != want {
				t.Errorf("WithSuffix(%q) contains %q = %v, want %v", q, p, got[p], want)
			}
		}
	}
}
