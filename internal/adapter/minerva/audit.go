package minerva

import (
	"context"
	"net/http"
)

const clickPath = "/api/actividad/clic_link/"

// RecordClick appends a click entry to the backend's activity log.
func (c *Client) RecordClick(ctx context.Context, url string) error {
	_, err := c.do(ctx, "record click", http.MethodPost, clickPath, struct {
		URL string `json:"url"`
	}{URL: url})
	return err
}
