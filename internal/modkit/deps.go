// Package modkit provides module wiring and core deps
package modkit

import (
	"libfj/internal/platform/config"
	"libfj/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}
