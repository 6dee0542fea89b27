package common

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	debug  atomic.Bool
	logger atomic.Pointer[zap.SugaredLogger]
)

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	logger.Store(l.Sugar())
}

// SetLogger replaces the process logger. A nil logger silences output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Sugar())
}

func SetDebug(on bool) {
	debug.Store(on)
}

func Sync() {
	_ = logger.Load().Sync()
}

func INFO(format string, args ...any) {
	logger.Load().Infof(format, args...)
}
func WARN(format string, args ...any) {
	logger.Load().Warnf(format, args...)
}
func FAIL(format string, args ...any) {
	logger.Load().Errorf(format, args...)
}

func DINFO(format string, args ...any) {
	if debug.Load() {
		logger.Load().Debugf(format, args...)
	}
}
func DWARN(format string, args ...any) {
	if debug.Load() {
		logger.Load().Warnf(format, args...)
	}
}
func DFAIL(format string, args ...any) {
	if debug.Load() {
		logger.Load().Errorf(format, args...)
	}
}
