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

// Notifier receives deprecation notices. Implementations must not block
// and must never abort resolution.
type Notifier interface {
	Notify(message string, opts NotifyOptions)
}

// NotifyOptions carries metadata of a deprecation notice.
type NotifyOptions struct {
	// Since is the version in which the deprecated form was replaced.
	Since string
}
