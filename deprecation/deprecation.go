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

// Package deprecation provides apis.Notifier implementations for the
// advisory notices emitted when legacy names are rewritten.
package deprecation

import (
	"log/slog"
	"sync"

	"dirpx.dev/resolvx/apis"
)

// NewLogger returns a Notifier that logs each notice at WARN on logger.
// A nil logger uses slog.Default().
func NewLogger(logger *slog.Logger) apis.Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &logNotifier{logger: logger}
}

type logNotifier struct {
	logger *slog.Logger
}

// Notify logs message with its since version.
func (n *logNotifier) Notify(message string, opts apis.NotifyOptions) {
	n.logger.Warn("deprecation", "message", message, "since", opts.Since)
}

// Nop returns a Notifier that drops every notice.
func Nop() apis.Notifier {
	return nopNotifier{}
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, apis.NotifyOptions) {}

// Notice is a recorded deprecation notice.
type Notice struct {
	Message string
	Since   string
}

// Recorder keeps every notice it receives, for diagnostics and tests.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Ensure Recorder implements apis.Notifier.
var _ apis.Notifier = (*Recorder)(nil)

// Notify records the notice.
func (r *Recorder) Notify(message string, opts apis.NotifyOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Message: message, Since: opts.Since})
}

// Notices returns a copy of the recorded notices.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}
