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

import "strings"

// ParsedName is a symbolic "type:name" request split into its parts.
type ParsedName struct {
	// FullName is the name as requested, e.g. "route:discovery.category".
	FullName string
	// Type is everything before the first colon.
	Type string
	// NameWithoutType is everything after the first colon.
	NameWithoutType string
}

// ParseName splits fullName on its first colon. A name without a colon
// yields empty Type and NameWithoutType, so downstream lookups miss.
func ParseName(fullName string) ParsedName {
	typ, name, ok := strings.Cut(fullName, ":")
	if !ok {
		return ParsedName{FullName: fullName}
	}
	return ParsedName{FullName: fullName, Type: typ, NameWithoutType: name}
}

// WithName returns a copy of p whose name part is replaced by name.
func (p ParsedName) WithName(name string) ParsedName {
	return ParsedName{FullName: p.Type + ":" + name, Type: p.Type, NameWithoutType: name}
}
