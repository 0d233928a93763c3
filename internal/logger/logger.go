package logger

import (
	"go.uber.org/zap"
)

var global *zap.Logger

// Init builds the process-wide logger. Dev mode uses the human-readable
// console encoder, everything else the JSON production config.
func Init(isDev bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if isDev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	global = l
	return nil
}

// L returns the global logger. Falls back to a no-op logger so that code
// paths reached before Init (tests mostly) do not panic.
func L() *zap.Logger {
	if global == nil {
		return zap.NewNop()
	}
	return global
}

func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
