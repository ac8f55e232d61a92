// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import "github.com/decred/slog"

// log is a logger that is initialized to the disabled logger by default.
// This means the package will not perform any logging by default until a
// logger is set.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info. This
// should be used in preference to SetLogWriter if the caller is also using
// slog.
func UseLogger(logger slog.Logger) {
	log = logger
}
