// Command libfj builds the libfj shared library:
//
//	go build -buildmode=c-shared -o libfj.so ./cmd/libfj
//
// The generated libfj.h declares every export; the record typedefs live in fj_types.h
package main

import (
	"runtime/debug"
	"sync"

	"libfj/internal/core/version"
	"libfj/internal/platform/config"
	perr "libfj/internal/platform/errors"
	"libfj/internal/platform/logger"
	bridgemodule "libfj/internal/services/bridge/module"
	"libfj/internal/services/bridge/service"

	"github.com/pkg/errors"
)

func main() {}

var alloc cAllocator

var (
	bridgeOnce sync.Once
	bridgeSvc  *service.Service
)

// bridge builds the call service on first use. Factory settings are still read per call
func bridge() *service.Service {
	bridgeOnce.Do(func() {
		logger.Init(logger.FromEnv())
		logger.Named("libfj").Debug().Str("version", version.Info("libfj").String()).Msg("loaded")
		bridgeSvc = bridgemodule.New(config.New(), alloc).Service()
	})
	return bridgeSvc
}

// caught logs a panic stopped at an export
func caught(op string, v any) {
	err := errors.WithStack(perr.PanicErrf("%s: %v", op, v))
	logger.Named("libfj").Error().Stack().Err(err).Bytes("goroutine", debug.Stack()).Msg("panic recovered at export")
}
