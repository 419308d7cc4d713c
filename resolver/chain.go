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

package resolver

import (
	"dirpx.dev/resolvx/apis"
)

// NewChain constructs an apis.Strategy that tries the given strategies in
// order. Nil strategies are ignored. The chain is safe for concurrent use
// provided strategies themselves are safe for concurrent TryResolve calls.
func NewChain(strategies ...apis.Strategy) apis.Strategy {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving strategy over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// TryResolve runs strategies in order until one handles p.
func (c chain) TryResolve(p apis.ParsedName) (any, bool) {
	for _, s := range c.strats {
		if v, ok := s.TryResolve(p); ok {
			return v, true
		}
	}
	return nil, false
}
