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

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/builder"
	"dirpx.dev/resolvx/config"
	"dirpx.dev/resolvx/deprecation"
	"dirpx.dev/resolvx/options"
	"dirpx.dev/resolvx/registry"
)

// undefined stands in for the host's default result.
const undefined = "undefined"

// sentinelHost resolves everything to undefined and leaves names alone.
type sentinelHost struct{}

func (sentinelHost) Normalize(s string) string            { return s }
func (sentinelHost) Resolve(apis.ParsedName) (any, bool)  { return undefined, true }
func (sentinelHost) Template(apis.ParsedName) (any, bool) { return nil, false }

// countingModules records every path loaded or probed.
type countingModules struct {
	*registry.Modules
	touched int
}

func (c *countingModules) Has(path string) bool {
	c.touched++
	return c.Modules.Has(path)
}

func (c *countingModules) Load(path string) (any, bool) {
	c.touched++
	return c.Modules.Load(path)
}

func (c *countingModules) Paths() []string {
	c.touched++
	return c.Modules.Paths()
}

type fixture struct {
	modules   *registry.Modules
	templates *registry.Templates
	helpers   *registry.Helpers
	opts      *options.Store
	notices   *deprecation.Recorder
}

func newFixture() *fixture {
	return &fixture{
		modules:   registry.NewModules(),
		templates: registry.NewTemplates(),
		helpers:   registry.NewHelpers(),
		opts:      options.New(),
		notices:   &deprecation.Recorder{},
	}
}

func (f *fixture) sources(host apis.Host) apis.Sources {
	return apis.Sources{
		Modules:   f.modules,
		Templates: f.templates,
		Helpers:   f.helpers,
		Options:   f.opts,
		Notifier:  f.notices,
		Host:      host,
	}
}

func (f *fixture) build(t *testing.T, host apis.Host) apis.Resolver {
	t.Helper()
	res := builder.New().BuildResolver(config.DefaultConfig(), f.sources(host), nil, nil)
	require.NotNil(t, res)
	return res
}

func TestResolve_ModuleTypes(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.modules.Register("discourse/components/user-card", registry.Module{Default: "UserCard"}))
	require.NoError(t, f.modules.Register("discourse/plugins/chat/services/chat-api", "ChatApi"))
	require.NoError(t, f.modules.Register("discourse/controllers/discovery/category", "CategoryController"))
	res := f.build(t, sentinelHost{})

	v, _ := res.Resolve("component:user-card")
	assert.Equal(t, "UserCard", v)

	v, _ = res.Resolve("service:chatApi")
	assert.Equal(t, "ChatApi", v)

	// normalized to "controller:discovery/category" first
	v, _ = res.Resolve("controller:discovery.category")
	assert.Equal(t, "CategoryController", v)
}

func TestResolve_Alias(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.modules.Register("discourse/controllers/tag-show", "TagShow"))
	res := f.build(t, sentinelHost{})

	assert.Equal(t, "controller:tag-show", res.Normalize("controller:tags-show"))
	v, ok := res.Resolve("controller:tags-show")
	assert.True(t, ok)
	assert.Equal(t, "TagShow", v)
	assert.Len(t, f.notices.Notices(), 2)
}

func TestResolve_BasicRoute(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.modules.Register("discourse/routes/discourse", registry.Module{Default: "DiscourseRoute"}))
	require.NoError(t, f.modules.Register("discourse/routes/basic", "BasicModule"))
	require.NoError(t, f.modules.Register("discourse/routes/about", "AboutRoute"))
	res := f.build(t, sentinelHost{})

	v, _ := res.Resolve("route:basic")
	assert.Equal(t, "DiscourseRoute", v)

	v, _ = res.Resolve("route:about")
	assert.Equal(t, "AboutRoute", v)
}

func TestResolve_BasicRouteIgnoresSuffixMatch(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.modules.Register("discourse/routes/basic", "BasicModule"))
	res := f.build(t, sentinelHost{})

	v, ok := res.Resolve("route:basic")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestResolve_HelperRegistryFirst(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.helpers.Register("format-date", "FormatDateHelper"))
	mods := &countingModules{Modules: f.modules}
	src := f.sources(sentinelHost{})
	src.Modules = mods
	res := builder.New().BuildResolver(config.NewConfig(config.WithAliases()), src, nil, nil)

	// normalization probes the module registry; resolution must not
	before := mods.touched
	res.Normalize("helper:format-date")
	probes := mods.touched - before

	before = mods.touched
	v, ok := res.Resolve("helper:format-date")
	assert.True(t, ok)
	assert.Equal(t, "FormatDateHelper", v)
	assert.Equal(t, probes, mods.touched-before)
}

func TestResolve_HelperFromModule(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.modules.Register("discourse/helpers/raw-date", "RawDate"))
	res := f.build(t, sentinelHost{})

	v, _ := res.Resolve("helper:raw-date")
	assert.Equal(t, "RawDate", v)
}

func TestResolve_Router(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.modules.Register("discourse/router", registry.Module{Default: "Router"}))
	res := f.build(t, sentinelHost{})

	v, _ := res.Resolve("router:main")
	assert.Equal(t, "Router", v)
}

func TestResolve_Unresolvable(t *testing.T) {
	f := newFixture()
	res := f.build(t, sentinelHost{})

	var (
		v  any
		ok bool
	)
	assert.NotPanics(t, func() { v, ok = res.Resolve("widget:does-not-exist") })
	assert.True(t, ok)
	assert.Equal(t, undefined, v)

	// unknown types and malformed names also reach the host
	v, _ = res.Resolve("mixin:nothing")
	assert.Equal(t, undefined, v)
	v, _ = res.Resolve("no-colon")
	assert.Equal(t, undefined, v)
}

func TestResolve_EmptySources(t *testing.T) {
	res := builder.New().BuildResolver(config.DefaultConfig(), apis.Sources{Notifier: deprecation.Nop()}, nil, nil)

	v, ok := res.Resolve("widget:does-not-exist")
	assert.False(t, ok)
	assert.Nil(t, v)

	_, ok = res.Resolve("template:does-not-exist")
	assert.False(t, ok)
}

func TestResolve_TemplatesNilOptionsStore(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.templates.Register("topic", "topic"))
	f.opts = nil
	res := f.build(t, nil)

	var (
		v  any
		ok bool
	)
	assert.NotPanics(t, func() { v, ok = res.Resolve("template:topic") })
	assert.True(t, ok)
	assert.Equal(t, "topic", v)
	assert.NotPanics(t, func() { _, ok = res.Resolve("template:does-not-exist") })
	assert.False(t, ok)
}

func TestResolve_Templates(t *testing.T) {
	f := newFixture()
	for _, k := range []string{"admin/templates/admin_email", "foo/bar", "foo-bar", "not_found", "mobile/topic", "topic"} {
		require.NoError(t, f.templates.Register(k, k))
	}
	res := f.build(t, nil)

	v, _ := res.Resolve("template:adminEmail")
	assert.Equal(t, "admin/templates/admin_email", v)

	v, _ = res.Resolve("template:foo.bar")
	assert.Equal(t, "foo/bar", v)

	v, _ = res.Resolve("template:topic")
	assert.Equal(t, "topic", v)
	f.opts.Set(options.MobileView, true)
	v, _ = res.Resolve("template:topic")
	assert.Equal(t, "mobile/topic", v)

	v, _ = res.Resolve("template:nowhere")
	assert.Equal(t, "not_found", v)
}
