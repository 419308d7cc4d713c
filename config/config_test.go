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

package config_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, "discourse", cfg.AppNamespace)
	assert.Equal(t, "admin", cfg.AdminNamespace)
	assert.Equal(t, "javascripts/", cfg.PluginPrefix)
	assert.Equal(t, "discourse/routes/discourse", cfg.BasicRouteModule)
	assert.Len(t, cfg.ModuleTypes, 9)

	// singular alias first, then five entries per type
	require.Len(t, cfg.Aliases, 11)
	assert.Equal(t, "app-events:main", cfg.Aliases[0].From)
	assert.Equal(t, "2.4.0", cfg.Aliases[0].Since)
	assert.Contains(t, cfg.Aliases, apis.Alias{From: "controller:tags-show", To: "controller:tag-show", Since: "2.6.0"})
	assert.Contains(t, cfg.Aliases, apis.Alias{From: "route:tagsShow", To: "route:tagShow", Since: "2.6.0"})
}

func TestNewConfig_Options(t *testing.T) {
	cfg := config.NewConfig(
		config.WithAppNamespace("forum"),
		config.WithAdminNamespace(""),
		config.WithBasicRoute("plain", "forum/routes/base"),
		config.WithModuleTypes("route"),
		config.WithAliases(),
		config.WithAlias("route:old", "route:new", "3.0.0"),
	)
	assert.Equal(t, "forum", cfg.AppNamespace)
	assert.Equal(t, config.DefaultAdminNamespace, cfg.AdminNamespace)
	assert.Equal(t, "plain", cfg.BasicRoute)
	assert.Equal(t, "forum/routes/base", cfg.BasicRouteModule)
	assert.Equal(t, []string{"route"}, cfg.ModuleTypes)
	assert.Equal(t, []apis.Alias{{From: "route:old", To: "route:new", Since: "3.0.0"}}, cfg.Aliases)

	// options never leak into the defaults
	assert.Len(t, config.DefaultConfig().Aliases, 11)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/resolvx/config/case001/config.yaml"
	doc := `
appNamespace: forum
notFoundTemplate: missing
aliases:
  - from: route:old
    to: route:new
    since: 3.1.0
`
	require.NoError(t, fs.Upload(ctx, URL, os.FileMode(0644), strings.NewReader(doc)))

	cfg, err := config.Load(ctx, fs, URL, config.WithAdminNamespace("staff"))
	require.NoError(t, err)
	assert.Equal(t, "forum", cfg.AppNamespace)
	assert.Equal(t, "missing", cfg.NotFoundTemplate)
	assert.Equal(t, "staff", cfg.AdminNamespace)
	// omitted keys keep their defaults
	assert.Equal(t, config.DefaultPluginPrefix, cfg.PluginPrefix)
	assert.Equal(t, []apis.Alias{{From: "route:old", To: "route:new", Since: "3.1.0"}}, cfg.Aliases)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(context.Background(), afs.New(), "mem://localhost/resolvx/config/none.yaml")
	assert.Error(t, err)
}
