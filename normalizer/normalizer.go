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

// Package normalizer rewrites requested "type:name" identifiers into their
// canonical form before resolution.
package normalizer

import (
	"fmt"
	"strings"

	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/utils/inflect"
)

// Normalizer applies, in order: the legacy alias table, the
// namespace-conventional module check, and the host's default.
type Normalizer struct {
	cfg      apis.Config
	modules  apis.ModuleRegistry
	notifier apis.Notifier
	host     apis.Host
	aliases  map[string]apis.Alias
}

// New constructs a Normalizer. A nil notifier or host disables notices or
// falls back to returning names unchanged.
func New(cfg apis.Config, modules apis.ModuleRegistry, notifier apis.Notifier, host apis.Host) *Normalizer {
	aliases := make(map[string]apis.Alias, len(cfg.Aliases))
	for _, a := range cfg.Aliases {
		// First entry wins, matching ordered scanning.
		if _, ok := aliases[a.From]; !ok {
			aliases[a.From] = a
		}
	}
	return &Normalizer{cfg: cfg, modules: modules, notifier: notifier, host: host, aliases: aliases}
}

// Normalize returns the canonical form of fullName.
func (n *Normalizer) Normalize(fullName string) string {
	if to, ok := n.alias(fullName); ok {
		if name, ok := n.conventional(to); ok {
			return name
		}
		return to
	}
	if name, ok := n.conventional(fullName); ok {
		return name
	}
	if n.host != nil {
		return n.host.Normalize(fullName)
	}
	return fullName
}

// alias rewrites a deprecated full name and emits a notice.
func (n *Normalizer) alias(fullName string) (string, bool) {
	a, ok := n.aliases[fullName]
	if !ok {
		return "", false
	}
	if n.notifier != nil {
		msg := a.Message
		if msg == "" {
			msg = fmt.Sprintf("%s was replaced with %s", a.From, a.To)
		}
		n.notifier.Notify(msg, apis.NotifyOptions{Since: a.Since})
	}
	return a.To, true
}

// conventional tries the slash then the dash variant of the name against the
// app and admin module namespaces.
func (n *Normalizer) conventional(fullName string) (string, bool) {
	typ, name, ok := strings.Cut(fullName, ":")
	if !ok || n.modules == nil {
		return "", false
	}

	// Allow rendering "admin/templates/xyz" too.
	name = inflect.RemoveFirst(name, "."+n.cfg.TemplatesSegment)
	name = inflect.RemoveFirst(name, "/"+n.cfg.TemplatesSegment)

	for _, variant := range []func(string) string{inflect.DotsToSlashes, inflect.DotsToDashes} {
		dashed := inflect.Dasherize(variant(name))
		if n.exists(typ, dashed) {
			return typ + ":" + dashed, true
		}
	}
	return "", false
}

func (n *Normalizer) exists(typ, name string) bool {
	base := typ + "s/" + name
	return n.modules.Has(n.cfg.AppNamespace+"/"+base) || n.modules.Has(n.cfg.AdminNamespace+"/"+base)
}
