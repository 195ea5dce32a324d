package minerva

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/minervactl/internal/domain"
)

const categoriesPath = "/api/categorias/"

type categoryBody struct {
	Nombre string `json:"nombre"`
}

func categoryPath(id int64) string {
	return fmt.Sprintf("%s%d/", categoriesPath, id)
}

// ListCategories returns every category.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	raw, err := c.do(ctx, "list categories", http.MethodGet, categoriesPath, nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[apiCategory](raw)
	if err != nil {
		return nil, fmt.Errorf("minerva: list categories: decode json: %w", err)
	}
	return mapSlice(items, apiCategory.toDomain), nil
}

// CreateCategory creates a category named name.
func (c *Client) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	var out apiCategory
	if err := c.doJSON(ctx, "create category", http.MethodPost, categoriesPath, categoryBody{Nombre: name}, &out); err != nil {
		return domain.Category{}, err
	}
	if out.Nombre == "" {
		out.Nombre = name
	}
	return out.toDomain(), nil
}

// RenameCategory replaces the name of category id.
func (c *Client) RenameCategory(ctx context.Context, id int64, name string) (domain.Category, error) {
	out := apiCategory{ID: id, Nombre: name}
	if err := c.doJSON(ctx, "rename category", http.MethodPut, categoryPath(id), categoryBody{Nombre: name}, &out); err != nil {
		return domain.Category{}, err
	}
	return out.toDomain(), nil
}

// DeleteCategory removes category id.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	_, err := c.do(ctx, "delete category", http.MethodDelete, categoryPath(id), nil)
	return err
}
