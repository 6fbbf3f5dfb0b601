package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
)

const (
	pathCategories = "/api/v1/categories/"
	routeCategory  = pathCategories + "{id}/"
)

// ListCategories calls GET /api/v1/categories/. A nil activeOnly leaves the
// filter to the server default.
func (c *Client) ListCategories(ctx context.Context, activeOnly *bool) ([]domain.Category, error) {
	opts := RequestOptions{Method: http.MethodGet}
	if activeOnly != nil {
		opts.Query = url.Values{"active_only": []string{strconv.FormatBool(*activeOnly)}}
	}

	var out []domain.Category
	if err := c.do(ctx, pathCategories, pathCategories, opts, &out); err != nil {
		return nil, wrap(OpListCategories, err)
	}
	return out, nil
}

// GetCategory calls GET /api/v1/categories/{id}/.
func (c *Client) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var out domain.Category
	path, err := resourcePath(pathCategories, id)
	if err != nil {
		return nil, wrap(OpGetCategory, err)
	}
	if err := c.do(ctx, routeCategory, path, RequestOptions{Method: http.MethodGet}, &out); err != nil {
		return nil, wrap(OpGetCategory, err)
	}
	return &out, nil
}

// CreateCategory calls POST /api/v1/categories/.
func (c *Client) CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	var out domain.Category
	if err := c.do(ctx, pathCategories, pathCategories, RequestOptions{Method: http.MethodPost, Body: in}, &out); err != nil {
		return nil, wrap(OpCreateCategory, err)
	}
	return &out, nil
}

// UpdateCategory calls PUT /api/v1/categories/{id}/.
func (c *Client) UpdateCategory(ctx context.Context, id string, in domain.CategoryInput) (*domain.Category, error) {
	var out domain.Category
	path, err := resourcePath(pathCategories, id)
	if err != nil {
		return nil, wrap(OpUpdateCategory, err)
	}
	if err := c.do(ctx, routeCategory, path, RequestOptions{Method: http.MethodPut, Body: in}, &out); err != nil {
		return nil, wrap(OpUpdateCategory, err)
	}
	return &out, nil
}

// DeleteCategory calls DELETE /api/v1/categories/{id}/ and reports true on success.
func (c *Client) DeleteCategory(ctx context.Context, id string) (bool, error) {
	path, err := resourcePath(pathCategories, id)
	if err != nil {
		return false, wrap(OpDeleteCategory, err)
	}
	if err := c.do(ctx, routeCategory, path, RequestOptions{Method: http.MethodDelete}, nil); err != nil {
		return false, wrap(OpDeleteCategory, err)
	}
	return true, nil
}
