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

// Package resolver dispatches normalized requests to per-type strategy
// chains.
package resolver

import (
	"log/slog"

	"dirpx.dev/resolvx/apis"
)

// Normalizer rewrites a full name into its canonical form.
type Normalizer interface {
	Normalize(fullName string) string
}

// New constructs an apis.Resolver. Requests are normalized by n, parsed, and
// handed to the chain registered for their type; types without a chain go
// to fallback. A nil logger discards debug output.
func New(n Normalizer, chains map[string]apis.Strategy, fallback apis.Strategy, logger *slog.Logger) apis.Resolver {
	table := make(map[string]apis.Strategy, len(chains))
	for typ, s := range chains {
		if s != nil {
			table[typ] = s
		}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &resolver{n: n, chains: table, fallback: fallback, logger: logger}
}

// resolver is immutable after construction.
type resolver struct {
	n        Normalizer
	chains   map[string]apis.Strategy
	fallback apis.Strategy
	logger   *slog.Logger
}

// Normalize returns the canonical form of fullName.
func (r *resolver) Normalize(fullName string) string {
	if r.n == nil {
		return fullName
	}
	return r.n.Normalize(fullName)
}

// Resolve normalizes fullName and runs the chain for its type.
func (r *resolver) Resolve(fullName string) (any, bool) {
	normalized := r.Normalize(fullName)
	p := apis.ParseName(normalized)

	s, ok := r.chains[p.Type]
	if !ok {
		s = r.fallback
	}
	var (
		v       any
		handled bool
	)
	if s != nil {
		v, handled = s.TryResolve(p)
	}
	r.logger.Debug("resolve",
		"name", fullName,
		"normalized", normalized,
		"type", p.Type,
		"resolved", handled,
	)
	return v, handled
}
