package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
)

const (
	pathProducts      = "/api/v1/products/"
	routeProduct      = pathProducts + "{id}/"
	routeProductStock = pathProducts + "{id}/stock/"
)

// ProductFilter narrows ListProducts. Unset fields are not sent, so the
// server default applies.
type ProductFilter struct {
	Page         int
	PerPage      int
	CategoryID   string
	Search       string
	ActiveOnly   *bool
	FeaturedOnly *bool
	MinPrice     *float64
	MaxPrice     *float64
	// Extra carries filters the typed fields do not cover. Typed fields win on conflict.
	Extra map[string]string
}

// Values renders the filter as query parameters.
func (f ProductFilter) Values() url.Values {
	q := url.Values{}
	for k, v := range f.Extra {
		if k = strings.TrimSpace(k); k != "" {
			q.Set(k, v)
		}
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if s := strings.TrimSpace(f.CategoryID); s != "" {
		q.Set("category_id", s)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q.Set("search", s)
	}
	if f.ActiveOnly != nil {
		q.Set("active_only", strconv.FormatBool(*f.ActiveOnly))
	}
	if f.FeaturedOnly != nil {
		q.Set("featured_only", strconv.FormatBool(*f.FeaturedOnly))
	}
	if f.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	return q
}

// ListProducts calls GET /api/v1/products/ with the filter as query parameters.
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) (*domain.ProductList, error) {
	var out domain.ProductList
	opts := RequestOptions{Method: http.MethodGet, Query: filter.Values()}
	if err := c.do(ctx, pathProducts, pathProducts, opts, &out); err != nil {
		return nil, wrap(OpListProducts, err)
	}
	return &out, nil
}

// GetProduct calls GET /api/v1/products/{id}/.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var out domain.Product
	path, err := resourcePath(pathProducts, id)
	if err != nil {
		return nil, wrap(OpGetProduct, err)
	}
	if err := c.do(ctx, routeProduct, path, RequestOptions{Method: http.MethodGet}, &out); err != nil {
		return nil, wrap(OpGetProduct, err)
	}
	return &out, nil
}

// CreateProduct calls POST /api/v1/products/.
func (c *Client) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, pathProducts, pathProducts, RequestOptions{Method: http.MethodPost, Body: in}, &out); err != nil {
		return nil, wrap(OpCreateProduct, err)
	}
	return &out, nil
}

// UpdateProduct calls PUT /api/v1/products/{id}/.
func (c *Client) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	var out domain.Product
	path, err := resourcePath(pathProducts, id)
	if err != nil {
		return nil, wrap(OpUpdateProduct, err)
	}
	if err := c.do(ctx, routeProduct, path, RequestOptions{Method: http.MethodPut, Body: in}, &out); err != nil {
		return nil, wrap(OpUpdateProduct, err)
	}
	return &out, nil
}

// DeleteProduct calls DELETE /api/v1/products/{id}/ and reports true on success.
func (c *Client) DeleteProduct(ctx context.Context, id string) (bool, error) {
	path, err := resourcePath(pathProducts, id)
	if err != nil {
		return false, wrap(OpDeleteProduct, err)
	}
	if err := c.do(ctx, routeProduct, path, RequestOptions{Method: http.MethodDelete}, nil); err != nil {
		return false, wrap(OpDeleteProduct, err)
	}
	return true, nil
}

// UpdateProductStock calls PATCH /api/v1/products/{id}/stock/?new_stock=n.
func (c *Client) UpdateProductStock(ctx context.Context, id string, newStock int) (*domain.Product, error) {
	var out domain.Product
	opts := RequestOptions{
		Method: http.MethodPatch,
		Query:  url.Values{"new_stock": []string{strconv.Itoa(newStock)}},
	}
	path, err := resourcePath(pathProducts, id, "stock")
	if err != nil {
		return nil, wrap(OpUpdateStock, err)
	}
	if err := c.do(ctx, routeProductStock, path, opts, &out); err != nil {
		return nil, wrap(OpUpdateStock, err)
	}
	return &out, nil
}

// Bool returns a pointer to v, for the optional filter fields.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
