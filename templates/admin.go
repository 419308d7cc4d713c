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

package templates

import (
	"strings"

	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/utils/inflect"
)

// FindAdminTemplate looks p up in the admin template namespace, where names
// like "adminEmail" live at "admin/templates/email".
func (f *Finder) FindAdminTemplate(p apis.ParsedName) (any, bool) {
	admin := f.cfg.AdminNamespace
	base := admin + "/" + f.cfg.TemplatesSegment + "/"
	decamelized := inflect.Decamelize(p.NameWithoutType)

	if f.cfg.ComponentsMarker != "" && strings.HasPrefix(decamelized, f.cfg.ComponentsMarker) {
		path := base + decamelized
		if v, ok := f.lookup(f.cfg.PluginPrefix + path); ok {
			return v, true
		}
		if v, ok := f.lookup(path); ok {
			return v, true
		}
	}

	if decamelized == f.cfg.PluginPrefix+admin {
		return f.lookup(base + admin)
	}

	if !strings.HasPrefix(decamelized, admin) && !strings.HasPrefix(decamelized, f.cfg.PluginPrefix+admin) {
		return nil, false
	}

	underscored := inflect.ReplacePrefix(decamelized, admin+"_", base)
	underscored = inflect.ReplacePrefix(underscored, admin+".", base)
	underscored = inflect.DotsToUnderscores(underscored)
	dashedName := inflect.Dashed(underscored)

	keys := []string{
		underscored,
		dashedName,
		strings.Replace(dashedName, admin+"-", admin+"/", 1),
	}
	if strings.HasPrefix(decamelized, admin) {
		// Names that keep their admin marker inside the admin namespace.
		keys = append(keys, base+decamelized)
	}
	for _, key := range keys {
		if v, ok := f.lookup(key); ok {
			return v, true
		}
	}
	return nil, false
}
