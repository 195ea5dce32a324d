package minerva

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/query"
)

const activitiesPath = "/api/actividades/"

// ListActivities returns the activity log filtered by rawQuery, which is
// forwarded verbatim. Only the first page of a paginated response is read.
func (c *Client) ListActivities(ctx context.Context, rawQuery string) ([]domain.Activity, error) {
	raw, err := c.do(ctx, "list activities", http.MethodGet, query.Join(activitiesPath, rawQuery), nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[apiActivity](raw)
	if err != nil {
		return nil, fmt.Errorf("minerva: list activities: decode json: %w", err)
	}
	return mapSlice(items, apiActivity.toDomain), nil
}
