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

package config

import (
	"context"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"dirpx.dev/resolvx/apis"
)

const (
	// DefaultAppNamespace is the application's root module namespace.
	DefaultAppNamespace = "discourse"
	// DefaultAdminNamespace is the admin root namespace.
	DefaultAdminNamespace = "admin"
	// DefaultTemplatesSegment names template directories.
	DefaultTemplatesSegment = "templates"
	// DefaultPluginPrefix prefixes plugin template names.
	DefaultPluginPrefix = "javascripts/"
	// DefaultMobilePrefix prefixes mobile template names.
	DefaultMobilePrefix = "mobile/"
	// DefaultComponentsMarker routes names into the admin components lookup.
	DefaultComponentsMarker = "components"
	// DefaultConnectorsMarker identifies plugin outlet connectors.
	DefaultConnectorsMarker = "connectors"
	// DefaultLoadingSuffix marks loading-state template requests.
	DefaultLoadingSuffix = "loading"
	// DefaultLoadingTemplate is the loading-state template key.
	DefaultLoadingTemplate = "loading"
	// DefaultNotFoundTemplate is the placeholder template key.
	DefaultNotFoundTemplate = "not_found"
	// DefaultRawSuffix is stripped from raw template names.
	DefaultRawSuffix = ".raw"
	// DefaultBasicRoute is the name of the built-in route.
	DefaultBasicRoute = "basic"
	// DefaultBasicRouteModule is the module implementing the built-in route.
	DefaultBasicRouteModule = "discourse/routes/discourse"
)

// DefaultModuleTypes lists the types resolved through the suffix index.
func DefaultModuleTypes() []string {
	return []string{
		"widget", "adapter", "model", "view", "helper",
		"controller", "component", "service", "route",
	}
}

// DefaultAliases returns the legacy alias table, in match order.
func DefaultAliases() []apis.Alias {
	aliases := []apis.Alias{{
		From:    "app-events:main",
		To:      "service:app-events",
		Since:   "2.4.0",
		Message: "`app-events:main` has been replaced with `service:app-events`",
	}}
	for _, typ := range []string{"controller", "route"} {
		for _, p := range [][2]string{
			{"discovery.categoryWithID", "discovery.category"},
			{"discovery.parentCategory", "discovery.category"},
			{"tags-show", "tag-show"},
			{"tags.show", "tag.show"},
			{"tagsShow", "tagShow"},
		} {
			aliases = append(aliases, apis.Alias{
				From:  typ + ":" + p[0],
				To:    typ + ":" + p[1],
				Since: "2.6.0",
			})
		}
	}
	return aliases
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		AppNamespace:     DefaultAppNamespace,
		AdminNamespace:   DefaultAdminNamespace,
		TemplatesSegment: DefaultTemplatesSegment,
		PluginPrefix:     DefaultPluginPrefix,
		MobilePrefix:     DefaultMobilePrefix,
		ComponentsMarker: DefaultComponentsMarker,
		ConnectorsMarker: DefaultConnectorsMarker,
		LoadingSuffix:    DefaultLoadingSuffix,
		LoadingTemplate:  DefaultLoadingTemplate,
		NotFoundTemplate: DefaultNotFoundTemplate,
		RawSuffix:        DefaultRawSuffix,
		BasicRoute:       DefaultBasicRoute,
		BasicRouteModule: DefaultBasicRouteModule,
		ModuleTypes:      DefaultModuleTypes(),
		Aliases:          DefaultAliases(),
	}
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAppNamespace sets the application namespace.
// An empty value resets to the default.
func WithAppNamespace(ns string) Option {
	return func(c *apis.Config) {
		if ns == "" {
			ns = DefaultAppNamespace
		}
		c.AppNamespace = ns
	}
}

// WithAdminNamespace sets the admin namespace.
// An empty value resets to the default.
func WithAdminNamespace(ns string) Option {
	return func(c *apis.Config) {
		if ns == "" {
			ns = DefaultAdminNamespace
		}
		c.AdminNamespace = ns
	}
}

// WithBasicRoute sets the built-in route name and its module path.
func WithBasicRoute(name, module string) Option {
	return func(c *apis.Config) {
		c.BasicRoute = name
		c.BasicRouteModule = module
	}
}

// WithModuleTypes replaces the list of suffix-resolved types.
func WithModuleTypes(types ...string) Option {
	return func(c *apis.Config) {
		c.ModuleTypes = append([]string(nil), types...)
	}
}

// WithAliases replaces the legacy alias table.
func WithAliases(aliases ...apis.Alias) Option {
	return func(c *apis.Config) {
		c.Aliases = append([]apis.Alias(nil), aliases...)
	}
}

// WithAlias appends one entry to the legacy alias table.
func WithAlias(from, to, since string) Option {
	return func(c *apis.Config) {
		c.Aliases = append(c.Aliases, apis.Alias{From: from, To: to, Since: since})
	}
}

// Load downloads a YAML config from URL and decodes it over DefaultConfig,
// so omitted keys keep their defaults. Options are applied last.
func Load(ctx context.Context, fs afs.Service, URL string, opts ...Option) (apis.Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return apis.Config{}, errors.Wrapf(err, "failed to load config: %v", URL)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return apis.Config{}, errors.Wrapf(err, "failed to decode config: %v", URL)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}
