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

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/viant/afs"

	"dirpx.dev/resolvx/apis"
	"dirpx.dev/resolvx/builder"
	"dirpx.dev/resolvx/config"
	"dirpx.dev/resolvx/deprecation"
	"dirpx.dev/resolvx/options"
	"dirpx.dev/resolvx/registry"
	"dirpx.dev/resolvx/suffix"
)

const appName = "resolvx"

// flags holds the persistent flag values shared by every subcommand.
type flags struct {
	manifestURL string
	configURL   string
	mobile      bool
	logLevel    string
	logFormat   string
}

// session is a loaded manifest with a resolver built over it.
type session struct {
	resolver apis.Resolver
	index    *suffix.Index
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          appName,
		Short:        "Resolve symbolic type:name requests to artifacts",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.manifestURL, "manifest", "m", "manifest.yaml", "manifest URL (file, mem, s3, gs, ...)")
	pf.StringVarP(&f.configURL, "config", "c", "", "optional YAML config URL")
	pf.BoolVar(&f.mobile, "mobile", false, "enable mobile template variants")
	pf.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(newResolveCmd(f), newNormalizeCmd(f), newSuffixCmd(f))
	return root
}

// load reads the config and manifest and builds a resolver over them.
func (f *flags) load(ctx context.Context, errOut io.Writer) (*session, error) {
	logger := newLogger(f.logLevel, f.logFormat, errOut)
	fs := afs.New()

	cfg := config.DefaultConfig()
	if f.configURL != "" {
		var err error
		if cfg, err = config.Load(ctx, fs, f.configURL); err != nil {
			return nil, err
		}
	}

	m, err := registry.LoadManifest(ctx, fs, f.manifestURL)
	if err != nil {
		return nil, err
	}
	set, err := m.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid manifest: %v", f.manifestURL)
	}

	opts := options.New()
	opts.Set(options.MobileView, f.mobile)

	src := apis.Sources{
		Modules:   set.Modules,
		Templates: set.Templates,
		Helpers:   set.Helpers,
		Options:   opts,
		Notifier:  deprecation.NewLogger(logger),
		Logger:    logger,
	}
	return &session{
		resolver: builder.New().BuildResolver(cfg, src, nil, nil),
		index:    suffix.NewIndex(set.Modules, cfg.TemplatesSegment),
	}, nil
}

// newLogger creates a slog.Logger writing to w. It does not set the
// global logger.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}
