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

package resolvx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/builder"
	"dirpx.dev/resolvx/config"
	"dirpx.dev/resolvx/options"
)

// init initializes the global state.
func init() {
	s := &state{cfg: config.DefaultConfig(), src: withOptions(apis.Sources{})}
	b := builder.New()
	s.res = b.BuildResolver(s.cfg, s.src, nil, nil)
	s.bld = b
	st.Store(s)
}

// ErrNilResolver is returned when a builder returns a nil resolver.
var ErrNilResolver = errors.New("resolvx: builder returned nil resolver")

// Resolve resolves fullName with the global resolver.
// It returns (nil, false) when nothing matched and never panics for an
// unknown name.
func Resolve(fullName string) (any, bool) {
	return st.Load().res.Resolve(fullName)
}

// Normalize returns the canonical form of fullName under the global resolver.
func Normalize(fullName string) string {
	return st.Load().res.Normalize(fullName)
}

// SetResolverOption stores a process-wide resolver option such as
// options.MobileView. Options are read on every request.
func SetResolverOption(name string, value any) {
	opts.Set(name, value)
}

// GetResolverOption returns a process-wide resolver option.
func GetResolverOption(name string) (any, bool) {
	return opts.Get(name)
}

// ClearResolverOptions removes every process-wide resolver option.
func ClearResolverOptions() {
	opts.Clear()
}

// Options returns the process-wide options store.
func Options() *options.Store {
	return &opts
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
func SetAll(cfg *apis.Config, ext any, src *apis.Sources, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nsrc := old.src
	if src != nil {
		nsrc = withOptions(*src)
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	nres := res
	npres := nres != nil
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nsrc, old.res, ext)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	st.Store(&state{cfg: ncfg, ext: ext, src: nsrc, res: nres, bld: nbld, pres: npres})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds the resolver unless
// it is pinned.
func SetConfig(cfg apis.Config) {
	update(func(s *state) { s.cfg = cfg })
}

// Sources returns the global sources.
func Sources() apis.Sources {
	return st.Load().src
}

// SetSources replaces the registries, host and sinks the global resolver
// reads from, and rebuilds it unless it is pinned. A nil Options field is
// bound to the process-wide options store.
func SetSources(src apis.Sources) {
	update(func(s *state) { s.src = withOptions(src) })
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds the resolver unless it is
// pinned.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(s *state) { s.bld = b })
}

// SetExt replaces the extension payload and rebuilds the resolver unless it
// is pinned.
func SetExt[T any](ext T) {
	update(func(s *state) { s.ext = ext })
}

// ExtAs returns the global extension payload as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global resolver and pins it: later config, source or
// builder changes will not rebuild it until UnpinResolver.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.res = res
	next.pres = true
	st.Store(&next)
}

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// UnpinResolver lets the global resolver be rebuilt again. The current
// resolver stays in place until the next change.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.pres = false
	st.Store(&next)
}

// update applies mutate to a copy of the current state, rebuilds the
// resolver if it is not pinned, and publishes the copy.
func update(mutate func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	mutate(&next)

	if !next.pres {
		next.res = next.bld.BuildResolver(next.cfg, next.src, old.res, next.ext)
	}
	if next.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(&next)
}

// withOptions binds src to the process-wide options store when it has none.
func withOptions(src apis.Sources) apis.Sources {
	if src.Options == nil {
		src.Options = &opts
	}
	return src
}

// opts is the process-wide resolver options store.
var opts options.Store

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the global extension payload.
	ext any
	// src holds the registries, host and sinks.
	src apis.Sources
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// pres indicates whether the resolver is pinned.
	pres bool
}
