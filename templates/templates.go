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

// Package templates resolves template requests through an ordered cascade of
// naming-convention transforms against a template registry.
//
// The cascade for a request is:
//
//  1. Plugin variant: the name under the plugin prefix.
//  2. Plugin-mobile variant, only with the mobile view option set.
//  3. Mobile variant, only with the mobile view option set.
//  4. FindTemplate: the direct lookup cascade, ending in the admin and
//     underscored lookups.
//  5. Loading, connector and not-found fallbacks.
//
// Later steps assume earlier ones did not match; the order is part of the
// contract.
package templates

import (
	"strings"

	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/options"
	"dirpx.dev/resolvx/utils/inflect"
)

// Finder runs the template cascade. It is stateless between calls; options
// are read on every request.
type Finder struct {
	cfg       apis.Config
	templates apis.TemplateRegistry
	opts      apis.OptionReader
	host      apis.Host

	cascade []apis.Strategy
	direct  []apis.Strategy
}

// Ensure Finder implements apis.Strategy.
var _ apis.Strategy = (*Finder)(nil)

// New constructs a Finder. Nil options disable mobile variants; a nil host
// skips the host-default lookup.
func New(cfg apis.Config, templates apis.TemplateRegistry, opts apis.OptionReader, host apis.Host) *Finder {
	f := &Finder{cfg: cfg, templates: templates, opts: opts, host: host}
	f.cascade = []apis.Strategy{
		apis.StrategyFunc(f.FindPluginTemplate),
		apis.StrategyFunc(f.FindPluginMobileTemplate),
		apis.StrategyFunc(f.FindMobileTemplate),
		apis.StrategyFunc(f.FindTemplate),
		apis.StrategyFunc(f.FindLoadingTemplate),
		apis.StrategyFunc(f.FindConnectorTemplate),
		apis.StrategyFunc(f.notFound),
	}
	f.direct = []apis.Strategy{
		apis.StrategyFunc(f.hostTemplate),
		f.key(inflect.DotsToSlashes),
		f.key(identity),
		f.key(f.withoutRaw),
		f.key(dashed),
		f.key(decamelizedFirst(inflect.FirstDotToSlash)),
		f.key(decamelizedFirst(inflect.FirstUnderscoreToSlash)),
		f.key(f.appNamespaced),
		apis.StrategyFunc(f.FindAdminTemplate),
		apis.StrategyFunc(f.FindUnderscoredTemplate),
	}
	return f
}

// TryResolve runs the full cascade for p.
func (f *Finder) TryResolve(p apis.ParsedName) (any, bool) {
	return first(f.cascade, p)
}

// FindPluginTemplate looks p up under the plugin prefix.
func (f *Finder) FindPluginTemplate(p apis.ParsedName) (any, bool) {
	return f.FindTemplate(p.WithName(f.cfg.PluginPrefix + p.NameWithoutType))
}

// FindPluginMobileTemplate looks p up under the plugin mobile prefix.
// It never matches unless the mobile view option is set.
func (f *Finder) FindPluginMobileTemplate(p apis.ParsedName) (any, bool) {
	if !f.mobile() {
		return nil, false
	}
	return f.FindTemplate(p.WithName(f.cfg.PluginPrefix + f.cfg.MobilePrefix + p.NameWithoutType))
}

// FindMobileTemplate looks p up under the mobile prefix.
// It never matches unless the mobile view option is set.
func (f *Finder) FindMobileTemplate(p apis.ParsedName) (any, bool) {
	if !f.mobile() {
		return nil, false
	}
	return f.FindTemplate(p.WithName(f.cfg.MobilePrefix + p.NameWithoutType))
}

// FindTemplate is the direct lookup cascade for p.
func (f *Finder) FindTemplate(p apis.ParsedName) (any, bool) {
	return first(f.direct, p)
}

// FindUnderscoredTemplate looks up the decamelized name with dashes turned
// into underscores.
func (f *Finder) FindUnderscoredTemplate(p apis.ParsedName) (any, bool) {
	return f.lookup(inflect.Underscore(inflect.Decamelize(p.NameWithoutType)))
}

// FindLoadingTemplate returns the loading template for names ending in the
// loading suffix.
func (f *Finder) FindLoadingTemplate(p apis.ParsedName) (any, bool) {
	if f.cfg.LoadingSuffix == "" || !strings.HasSuffix(p.NameWithoutType, f.cfg.LoadingSuffix) {
		return nil, false
	}
	return f.lookup(f.cfg.LoadingTemplate)
}

// FindConnectorTemplate returns plugin outlet connector templates, which
// are always registered under the plugin prefix.
func (f *Finder) FindConnectorTemplate(p apis.ParsedName) (any, bool) {
	full := inflect.RemoveFirst(p.NameWithoutType, f.cfg.ComponentsMarker+"/")
	if f.cfg.ConnectorsMarker == "" || !strings.HasPrefix(full, f.cfg.ConnectorsMarker) {
		return nil, false
	}
	return f.lookup(f.cfg.PluginPrefix + full)
}

func (f *Finder) notFound(apis.ParsedName) (any, bool) {
	return f.lookup(f.cfg.NotFoundTemplate)
}

func (f *Finder) hostTemplate(p apis.ParsedName) (any, bool) {
	if f.host == nil {
		return nil, false
	}
	return f.host.Template(p)
}

func (f *Finder) mobile() bool {
	return f.opts != nil && f.opts.Bool(options.MobileView)
}

// lookup treats a nil template as a miss.
func (f *Finder) lookup(key string) (any, bool) {
	if f.templates == nil || key == "" {
		return nil, false
	}
	v, ok := f.templates.Lookup(key)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// key adapts a name transform into a registry lookup step.
func (f *Finder) key(transform func(string) string) apis.Strategy {
	return apis.StrategyFunc(func(p apis.ParsedName) (any, bool) {
		return f.lookup(transform(p.NameWithoutType))
	})
}

func (f *Finder) withoutRaw(name string) string {
	return inflect.TrimSuffix(name, f.cfg.RawSuffix)
}

func (f *Finder) appNamespaced(name string) string {
	return f.cfg.AppNamespace + "/" + f.cfg.TemplatesSegment + "/" + name
}

func identity(name string) string { return name }

// dashed decamelizes name and turns dots and underscores into dashes.
func dashed(name string) string {
	return inflect.Dashed(inflect.Decamelize(name))
}

func decamelizedFirst(transform func(string) string) func(string) string {
	return func(name string) string {
		return transform(inflect.Decamelize(name))
	}
}

// first returns the result of the first strategy that handles p.
func first(strats []apis.Strategy, p apis.ParsedName) (any, bool) {
	for _, s := range strats {
		if v, ok := s.TryResolve(p); ok {
			return v, true
		}
	}
	return nil, false
}
