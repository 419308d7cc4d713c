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

package apis

// Config carries the naming literals that drive normalization and template
// lookup. It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// AppNamespace is the root module namespace of the application
	// (e.g. "discourse" for "discourse/controllers/foo").
	AppNamespace string `yaml:"appNamespace"`

	// AdminNamespace is the root namespace of admin modules and templates.
	AdminNamespace string `yaml:"adminNamespace"`

	// TemplatesSegment names the path segment under which templates live.
	// Module paths containing it are kept out of the suffix index.
	TemplatesSegment string `yaml:"templatesSegment"`

	// PluginPrefix is prepended to template names to find plugin templates.
	PluginPrefix string `yaml:"pluginPrefix"`

	// MobilePrefix is prepended to template names to find mobile templates.
	MobilePrefix string `yaml:"mobilePrefix"`

	// ComponentsMarker is the decamelized prefix that routes a template name
	// into the admin components lookup.
	ComponentsMarker string `yaml:"componentsMarker"`

	// ConnectorsMarker is the prefix identifying plugin outlet connectors.
	ConnectorsMarker string `yaml:"connectorsMarker"`

	// LoadingSuffix marks loading-state template requests.
	LoadingSuffix string `yaml:"loadingSuffix"`

	// LoadingTemplate is the template key returned for loading-state requests.
	LoadingTemplate string `yaml:"loadingTemplate"`

	// NotFoundTemplate is the placeholder template key used when every
	// other template lookup fails.
	NotFoundTemplate string `yaml:"notFoundTemplate"`

	// RawSuffix is stripped from template names as a lookup variant.
	RawSuffix string `yaml:"rawSuffix"`

	// BasicRoute is the route name that always resolves to BasicRouteModule.
	BasicRoute string `yaml:"basicRoute"`

	// BasicRouteModule is the module path of the built-in basic route.
	BasicRouteModule string `yaml:"basicRouteModule"`

	// ModuleTypes lists the declared types resolved through the suffix index.
	ModuleTypes []string `yaml:"moduleTypes"`

	// Aliases is the ordered legacy alias table. The first exact match wins.
	Aliases []Alias `yaml:"aliases"`
}

// Alias rewrites a deprecated full name to its replacement.
type Alias struct {
	// From is the deprecated full name, e.g. "controller:tags-show".
	From string `yaml:"from"`
	// To is the replacement full name.
	To string `yaml:"to"`
	// Since is the version in which From was deprecated.
	Since string `yaml:"since"`
	// Message overrides the default deprecation message when set.
	Message string `yaml:"message,omitempty"`
}
