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

// NewHostStrategy creates an apis.Strategy that delegates to the host's
// default resolution. It ends every module chain.
func NewHostStrategy(host apis.Host) apis.Strategy {
	return apis.StrategyFunc(func(p apis.ParsedName) (any, bool) {
		if host == nil {
			return nil, false
		}
		return host.Resolve(p)
	})
}
