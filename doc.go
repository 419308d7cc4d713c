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

// Package resolvx provides a process-wide dependency-name resolver for a
// component framework.
//
// resolvx turns a symbolic request such as "route:discovery.category" or
// "template:adminEmail" into the concrete artifact that should satisfy it:
// a module export, a helper, or a compiled template. The framework supplies
// the registries; resolvx supplies the mapping.
//
// # Design
//
// A request goes through three stages:
//
//   - Normalization: legacy aliases are rewritten (with a deprecation
//     notice), then the name is matched against the app and admin module
//     namespaces in its slash and dash forms. Anything else is left to the
//     host.
//
//   - Dispatch: the normalized "type:name" is parsed and handed to the
//     strategy chain registered for its type.
//
//   - Resolution: module types ask the suffix index for the module whose
//     path ends with "<type>s/<name>"; helpers check the helper registry
//     first; the "basic" route is pinned to a built-in module; templates run
//     the naming cascade in package templates. Every chain ends in the
//     host's default.
//
// Resolution never fails loudly. A name that matches nothing yields
// (nil, false), or the host's default, or the not-found template.
//
// # Global API
//
// The package keeps an immutable snapshot (config, sources, builder,
// resolver) behind an atomic pointer. Readers load it without locking:
//
//	v, ok := resolvx.Resolve("component:user-card")
//	name := resolvx.Normalize("controller:tags-show") // "controller:tag-show"
//
// Writers (SetConfig, SetSources, SetBuilder, SetExt, SetResolver, SetAll)
// take a short build mutex, assemble a new snapshot, rebuild the resolver
// unless it is pinned, and publish it.
//
// Resolver options such as options.MobileView are process-wide and read on
// every request:
//
//	resolvx.SetResolverOption(options.MobileView, true)
//	defer resolvx.ClearResolverOptions()
//
// # Usage pattern in a binary
//
//  1. Fill registry.Modules, registry.Templates and registry.Helpers (or
//     load a registry.Manifest).
//
//  2. resolvx.SetSources(apis.Sources{Modules: ..., Templates: ..., ...}).
//
//  3. Optionally resolvx.SetConfig(config.NewConfig(...)) for another app
//     namespace or alias table.
//
//  4. Call resolvx.Resolve for every lookup.
package resolvx
