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

package strategy

import (
	"dirpx.dev/resolvx/apis"
)

// NewHelperStrategy creates an apis.Strategy that looks helpers up by exact
// name before any module lookup happens.
func NewHelperStrategy(helpers apis.HelperRegistry) apis.Strategy {
	return &helperStrategy{helpers: helpers}
}

// helperStrategy is a fast path over the helper registry.
type helperStrategy struct {
	helpers apis.HelperRegistry
}

// Ensure helperStrategy implements apis.Strategy.
var _ apis.Strategy = (*helperStrategy)(nil)

// TryResolve returns the helper named p.NameWithoutType.
func (s *helperStrategy) TryResolve(p apis.ParsedName) (any, bool) {
	if s.helpers == nil || p.NameWithoutType == "" {
		return nil, false
	}
	h, ok := s.helpers.Lookup(p.NameWithoutType)
	if !ok || h == nil {
		return nil, false
	}
	return h, true
}
