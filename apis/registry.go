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

// ModuleRegistry is the set of loadable module paths supplied by the host.
// It is populated once at startup and read-only during resolution.
type ModuleRegistry interface {
	// Has reports whether a module is registered at path.
	Has(path string) bool
	// Load synchronously loads the module at path.
	Load(path string) (module any, ok bool)
	// Paths returns all registered paths in insertion order.
	Paths() []string
}

// TemplateRegistry maps template keys to compiled templates.
type TemplateRegistry interface {
	// Lookup returns the template registered under key.
	Lookup(key string) (template any, ok bool)
}

// HelperRegistry maps helper names to helpers.
type HelperRegistry interface {
	// Lookup returns the helper registered under name.
	Lookup(name string) (helper any, ok bool)
}

// DefaultExporter is implemented by loaded modules that wrap their main
// export. Resolution unwraps it when DefaultExport is non-nil.
type DefaultExporter interface {
	DefaultExport() any
}

// OptionReader exposes the resolver options consulted during resolution.
type OptionReader interface {
	// Bool returns the boolean option stored under name, false if unset.
	Bool(name string) bool
}
