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

package registry

import (
	"context"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Manifest lists the artifacts known to a process. It is the on-disk form
// of the three registries used by tools that have no live framework.
type Manifest struct {
	Modules   []string `yaml:"modules"`
	Templates []string `yaml:"templates"`
	Helpers   []string `yaml:"helpers"`
}

// Set is a populated triple of registries.
type Set struct {
	Modules   *Modules
	Templates *Templates
	Helpers   *Helpers
}

// LoadManifest downloads and decodes a YAML manifest from URL.
func LoadManifest(ctx context.Context, fs afs.Service, URL string) (*Manifest, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load manifest: %v", URL)
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode manifest: %v", URL)
	}
	return m, nil
}

// Build registers every manifest entry. Each artifact is its own key, so a
// resolved artifact names the path or template it came from.
func (m *Manifest) Build() (*Set, error) {
	set := &Set{Modules: NewModules(), Templates: NewTemplates(), Helpers: NewHelpers()}
	for _, p := range m.Modules {
		if err := set.Modules.Register(p, p); err != nil {
			return nil, errors.Wrapf(err, "module %q", p)
		}
	}
	for _, k := range m.Templates {
		if err := set.Templates.Register(k, k); err != nil {
			return nil, errors.Wrapf(err, "template %q", k)
		}
	}
	for _, n := range m.Helpers {
		if err := set.Helpers.Register(n, n); err != nil {
			return nil, errors.Wrapf(err, "helper %q", n)
		}
	}
	return set, nil
}
