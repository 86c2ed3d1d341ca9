// Package logutil provides a package-wide logging wrapper on top of
// go.uber.org/zap, so callers never import zap directly.
//
// The default logger writes nothing; embedders that want diagnostics call
// SetLogger with a configured *zap.Logger before using the tree.
package logutil

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// SetLogger replaces the package-wide logger. Passing nil restores the
// no-op logger.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	global.Store(logger)
}

// BgLogger returns the current package-wide logger.
func BgLogger() *zap.Logger {
	return global.Load()
}
