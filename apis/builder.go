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

import "log/slog"

// Sources bundles the collaborators a Resolver reads from.
// Nil fields are replaced by empty defaults at build time.
type Sources struct {
	Modules   ModuleRegistry
	Templates TemplateRegistry
	Helpers   HelperRegistry
	Options   OptionReader
	Notifier  Notifier
	Host      Host
	Logger    *slog.Logger
}

// Builder composes a Resolver from a Config and Sources.
// Implementations may reuse state from the previous resolver, or ignore it.
type Builder interface {
	// BuildResolver constructs a Resolver for cfg over src.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildResolver(cfg Config, src Sources, prev Resolver, ext any) Resolver
}
