package minerva

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/query"
)

const linksPath = "/api/links/"

func linkPath(id int64) string {
	return fmt.Sprintf("%s%d/", linksPath, id)
}

type linkPatch struct {
	Estado       domain.LinkStatus `json:"estado,omitempty"`
	CategoriaIDs *[]int64          `json:"categoria_ids,omitempty"`
}

// ListLinks returns the links filtered by rawQuery, which is forwarded
// verbatim.
func (c *Client) ListLinks(ctx context.Context, rawQuery string) ([]domain.Link, error) {
	raw, err := c.do(ctx, "list links", http.MethodGet, query.Join(linksPath, rawQuery), nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[apiLink](raw)
	if err != nil {
		return nil, fmt.Errorf("minerva: list links: decode json: %w", err)
	}
	return mapSlice(items, apiLink.toDomain), nil
}

// GetLink returns link id with its current status and categories.
func (c *Client) GetLink(ctx context.Context, id int64) (domain.Link, error) {
	var out apiLink
	if err := c.doJSON(ctx, "get link", http.MethodGet, linkPath(id), nil, &out); err != nil {
		return domain.Link{}, err
	}
	return out.toDomain(), nil
}

// UpdateLink PATCHes the status and, when upd.CategoryIDs is non-nil, the
// category assignment of link id.
func (c *Client) UpdateLink(ctx context.Context, id int64, upd domain.LinkUpdate) error {
	body := linkPatch{Estado: upd.Status}
	if upd.CategoryIDs != nil {
		ids := upd.CategoryIDs
		body.CategoriaIDs = &ids
	}
	_, err := c.do(ctx, "update link", http.MethodPatch, linkPath(id), body)
	return err
}
