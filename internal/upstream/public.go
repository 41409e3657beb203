package upstream

import (
	"context"
	"net/url"

	"github.com/mechhub/portal/internal/models"
)

// FindMechanics issues one query to the public search endpoint. The caller
// builds the query values from the filter set; every filter change is a
// fresh round trip, no result caching.
func (c *Client) FindMechanics(ctx context.Context, query url.Values) (*models.FindResult, error) {
	var result models.FindResult
	if err := c.do(ctx, "GET", "/public/find", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
