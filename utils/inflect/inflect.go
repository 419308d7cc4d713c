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

// Package inflect holds the string transforms the resolver composes into its
// lookup cascades. Every function is pure and allocation-light.
package inflect

import (
	"regexp"
	"strings"
)

// camelBoundary matches a lowercase letter or digit followed by an uppercase
// letter.
var camelBoundary = regexp.MustCompile(`([a-z\d])([A-Z])`)

// Decamelize inserts "_" at lower-to-upper case boundaries and lowercases the
// result: "innerHTML" -> "inner_html", "adminEmail" -> "admin_email".
func Decamelize(s string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(s, "${1}_${2}"))
}

// Dasherize decamelizes s and replaces spaces and underscores with dashes:
// "tagsShow" -> "tags-show", "my_widget" -> "my-widget".
func Dasherize(s string) string {
	return strings.NewReplacer(" ", "-", "_", "-").Replace(Decamelize(s))
}

// Underscore replaces every dash with an underscore.
func Underscore(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// DotsToSlashes replaces every "." with "/".
func DotsToSlashes(s string) string {
	return strings.ReplaceAll(s, ".", "/")
}

// DotsToDashes replaces every "." with "-".
func DotsToDashes(s string) string {
	return strings.ReplaceAll(s, ".", "-")
}

// DotsToUnderscores replaces every "." with "_".
func DotsToUnderscores(s string) string {
	return strings.ReplaceAll(s, ".", "_")
}

// Dashed replaces every "." and "_" with "-".
func Dashed(s string) string {
	return strings.NewReplacer(".", "-", "_", "-").Replace(s)
}

// FirstDotToSlash replaces the first "." with "/".
func FirstDotToSlash(s string) string {
	return strings.Replace(s, ".", "/", 1)
}

// FirstUnderscoreToSlash replaces the first "_" with "/".
func FirstUnderscoreToSlash(s string) string {
	return strings.Replace(s, "_", "/", 1)
}

// TrimSuffix removes suffix from the end of s once, if present.
func TrimSuffix(s, suffix string) string {
	if suffix == "" {
		return s
	}
	return strings.TrimSuffix(s, suffix)
}

// RemoveFirst deletes the first occurrence of sub in s.
func RemoveFirst(s, sub string) string {
	if sub == "" {
		return s
	}
	return strings.Replace(s, sub, "", 1)
}

// ReplacePrefix swaps a leading prefix for repl; s is returned unchanged when
// it does not start with prefix.
func ReplacePrefix(s, prefix, repl string) string {
	if prefix == "" || !strings.HasPrefix(s, prefix) {
		return s
	}
	return repl + s[len(prefix):]
}
