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

package suffix

import "strings"

// Trie indexes separator-delimited values by their trailing segments.
// Values are stored along the reversed segment path, so every suffix query
// is a walk from the root followed by a collection of the reached subtree.
//
// Trie is not safe for concurrent mutation; Index guards it.
type Trie struct {
	sep  string
	root *node
	size int
}

// node is a single segment in the reversed path.
type node struct {
	// children maps the next (preceding) segment to its node.
	children map[string]*node
	// order keeps child segments in insertion order.
	order []string
	// value is the full value terminating at this node, if leaf.
	value string
	// leaf marks nodes at which an added value ends.
	leaf bool
}

// NewTrie constructs an empty Trie splitting values on sep.
func NewTrie(sep string) *Trie {
	return &Trie{sep: sep, root: &node{}}
}

// Add inserts value. Adding the same value twice is a no-op.
func (t *Trie) Add(value string) {
	segs := strings.Split(value, t.sep)
	cur := t.root
	for i := len(segs) - 1; i >= 0; i-- {
		cur = cur.child(segs[i])
	}
	if cur.leaf {
		return
	}
	cur.leaf = true
	cur.value = value
	t.size++
}

// Len returns the number of distinct values added.
func (t *Trie) Len() int {
	return t.size
}

// WithSuffix returns up to limit values whose trailing segments equal the
// segments of suffix. A limit <= 0 returns every match. The value equal to
// suffix comes first, then longer values with the most recently added
// branch first.
func (t *Trie) WithSuffix(suffix string, limit int) []string {
	segs := strings.Split(suffix, t.sep)
	cur := t.root
	for i := len(segs) - 1; i >= 0; i-- {
		next, ok := cur.children[segs[i]]
		if !ok {
			return nil
		}
		cur = next
	}

	var out []string
	stack := []*node{cur}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.leaf {
			out = append(out, n.value)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
		for _, seg := range n.order {
			stack = append(stack, n.children[seg])
		}
	}
	return out
}

// child returns the child for seg, creating it when missing.
func (n *node) child(seg string) *node {
	if c, ok := n.children[seg]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*node)
	}
	c := &node{}
	n.children[seg] = c
	n.order = append(n.order, seg)
	return c
}
