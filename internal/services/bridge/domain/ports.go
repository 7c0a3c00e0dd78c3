// Package domain holds the ports of the bridge service
package domain

import (
	"context"

	"libfj/internal/adapters/factory"
)

// Factory is the marketplace client one exported call talks to
type Factory interface {
	Search(ctx context.Context, b *factory.SearchBuilder) ([]factory.RobotListInfo, error)
	Get(ctx context.Context, itemID int64) (factory.RobotInfo, error)

	// BaseURL names the endpoint; it travels in error sentinels
	BaseURL() string
}

// Dialer builds a fresh Factory for each call; nothing is shared between calls
type Dialer func() (Factory, error)
