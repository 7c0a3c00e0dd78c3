package factory

import (
	"context"
	"net/http"
	"strconv"

	perr "libfj/internal/platform/errors"
)

// List fetches the front page with the Factory defaults
func (c *Client) List(ctx context.Context) ([]RobotListInfo, error) {
	return c.Search(ctx, NewSearch())
}

// Search sends the builder's payload and returns the listed robots in Factory order
func (c *Client) Search(ctx context.Context, b *SearchBuilder) ([]RobotListInfo, error) {
	if b == nil {
		b = NewSearch()
	}
	body, err := c.do(ctx, http.MethodPost, listPath, b.Payload())
	if err != nil {
		return nil, perr.WithOp(err, "factory.Search")
	}
	out, err := decodeEnvelope[ListResponse](body)
	if err != nil {
		return nil, perr.WithOp(err, "factory.Search")
	}
	return out.RoboShopItems, nil
}

// Get fetches one robot including its geometry
func (c *Client) Get(ctx context.Context, itemID int64) (RobotInfo, error) {
	body, err := c.do(ctx, http.MethodGet, getPath+strconv.FormatInt(itemID, 10), nil)
	if err != nil {
		return RobotInfo{}, perr.WithOp(err, "factory.Get")
	}
	out, err := decodeEnvelope[RobotInfo](body)
	if err != nil {
		return RobotInfo{}, perr.WithOp(err, "factory.Get")
	}
	return out, nil
}
