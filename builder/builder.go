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

package builder

import (
	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/deprecation"
	"dirpx.dev/resolvx/host"
	"dirpx.dev/resolvx/normalizer"
	"dirpx.dev/resolvx/registry"
	"dirpx.dev/resolvx/resolver"
	"dirpx.dev/resolvx/strategy"
	"dirpx.dev/resolvx/suffix"
	"dirpx.dev/resolvx/templates"
)

const (
	// TypeHelper is resolved through the helper registry first.
	TypeHelper = "helper"
	// TypeRoute owns the built-in basic route.
	TypeRoute = "route"
	// TypeRouter resolves the application router.
	TypeRouter = "router"
	// TypeTemplate is resolved through the template cascade.
	TypeTemplate = "template"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildResolver wires the normalizer, the suffix index and one strategy
// chain per declared type. The previous resolver is not reused: the suffix
// index belongs to the module registry it was built from.
func (b *builder) BuildResolver(cfg apis.Config, src apis.Sources, _ apis.Resolver, _ any) apis.Resolver {
	src = withDefaults(src)

	index := suffix.NewIndex(src.Modules, cfg.TemplatesSegment)
	module := strategy.NewModuleStrategy(index, src.Modules)
	fallback := strategy.NewHostStrategy(src.Host)

	chains := make(map[string]apis.Strategy, len(cfg.ModuleTypes)+2)
	for _, typ := range cfg.ModuleTypes {
		chains[typ] = resolver.NewChain(module, fallback)
	}
	if _, ok := chains[TypeHelper]; ok {
		chains[TypeHelper] = resolver.NewChain(strategy.NewHelperStrategy(src.Helpers), module, fallback)
	}
	if _, ok := chains[TypeRoute]; ok {
		chains[TypeRoute] = strategy.NewBuiltinStrategy(
			cfg.BasicRoute,
			cfg.BasicRouteModule,
			src.Modules,
			resolver.NewChain(module, fallback),
		)
	}
	chains[TypeRouter] = resolver.NewChain(strategy.NewRouterStrategy(cfg.AppNamespace, src.Modules), fallback)
	chains[TypeTemplate] = templates.New(cfg, src.Templates, src.Options, src.Host)

	n := normalizer.New(cfg, src.Modules, src.Notifier, src.Host)
	return resolver.New(n, chains, fallback, src.Logger)
}

// withDefaults fills nil sources with empty collaborators.
func withDefaults(src apis.Sources) apis.Sources {
	if src.Modules == nil {
		src.Modules = registry.NewModules()
	}
	if src.Templates == nil {
		src.Templates = registry.NewTemplates()
	}
	if src.Helpers == nil {
		src.Helpers = registry.NewHelpers()
	}
	if src.Notifier == nil {
		src.Notifier = deprecation.NewLogger(src.Logger)
	}
	if src.Host == nil {
		src.Host = host.Templates{Registry: src.Templates}
	}
	return src
}
