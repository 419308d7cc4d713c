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

// Strategy is a pluggable resolution step. A Resolver chains strategies in
// order (e.g., Helper -> Module -> Host) per declared type.
type Strategy interface {
	// TryResolve attempts to resolve p. It returns (artifact, true) if
	// handled; otherwise (nil, false) to fall through.
	TryResolve(p ParsedName) (artifact any, handled bool)
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(p ParsedName) (any, bool)

// TryResolve calls f(p).
func (f StrategyFunc) TryResolve(p ParsedName) (any, bool) {
	return f(p)
}
