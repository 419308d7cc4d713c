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

package registry_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"dirpx.dev/resolvx/registry"
)

const manifestYAML = `
modules:
  - discourse/routes/discourse
  - discourse/controllers/tag-show
  - discourse/templates/about
templates:
  - not_found
  - admin/templates/admin_email
helpers:
  - format-date
`

func TestLoadManifest(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/resolvx/manifest/case001/manifest.yaml"
	require.NoError(t, fs.Upload(ctx, URL, os.FileMode(0644), strings.NewReader(manifestYAML)))

	m, err := registry.LoadManifest(ctx, fs, URL)
	require.NoError(t, err)
	assert.Len(t, m.Modules, 3)
	assert.Equal(t, []string{"not_found", "admin/templates/admin_email"}, m.Templates)

	set, err := m.Build()
	require.NoError(t, err)
	assert.True(t, set.Modules.Has("discourse/controllers/tag-show"))
	v, ok := set.Templates.Lookup("admin/templates/admin_email")
	assert.True(t, ok)
	assert.Equal(t, "admin/templates/admin_email", v)
	_, ok = set.Helpers.Lookup("format-date")
	assert.True(t, ok)
}

func TestLoadManifest_Errors(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()

	_, err := registry.LoadManifest(ctx, fs, "mem://localhost/resolvx/manifest/missing.yaml")
	assert.Error(t, err)

	URL := "mem://localhost/resolvx/manifest/case002/manifest.yaml"
	require.NoError(t, fs.Upload(ctx, URL, os.FileMode(0644), strings.NewReader("modules: [a, b")))
	_, err = registry.LoadManifest(ctx, fs, URL)
	assert.Error(t, err)
}

func TestManifest_BuildDuplicate(t *testing.T) {
	m := &registry.Manifest{Modules: []string{"a/b", "a/b"}}
	// identical values are idempotent
	_, err := m.Build()
	assert.NoError(t, err)

	m = &registry.Manifest{Templates: []string{""}}
	_, err = m.Build()
	assert.ErrorIs(t, err, registry.ErrEmptyKey)
}
