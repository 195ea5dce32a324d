package minerva

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/minervactl/internal/domain"
)

const usersPath = "/api/usuarios/"

// ListUsers returns the accounts offered as activity filter options.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	raw, err := c.do(ctx, "list users", http.MethodGet, usersPath, nil)
	if err != nil {
		return nil, err
	}
	users, err := decodeList[apiUser](raw)
	if err != nil {
		return nil, fmt.Errorf("minerva: list users: decode json: %w", err)
	}
	return mapSlice(users, apiUser.toDomain), nil
}
