package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"

	"github.com/pkg/errors"
)

// catalogGateway implements gateway.CatalogGateway.
type catalogGateway struct {
	client *Client
}

// NewCatalogGateway wires the catalog endpoints.
func NewCatalogGateway(client *Client) gateway.CatalogGateway {
	return &catalogGateway{client: client}
}

func pageQuery(page gateway.Page) url.Values {
	query := url.Values{}
	if page.Number > 0 {
		query.Set("page", strconv.Itoa(page.Number))
	}
	if page.Limit > 0 {
		query.Set("limit", strconv.Itoa(page.Limit))
	}

	return query
}

func (g *catalogGateway) Categories(ctx context.Context) ([]entity.Category, error) {
	raw, err := g.client.send(ctx, requestSpec{
		method:       http.MethodGet,
		path:         "/api/categories",
		cacheControl: "no-cache",
	})
	if err != nil {
		return nil, err
	}

	wires, err := decodeList[wireCategory](raw, "categories")
	if err != nil {
		return nil, err
	}

	categories := make([]entity.Category, len(wires))
	for i, w := range wires {
		categories[i] = w.toEntity()
	}

	return categories, nil
}

func (g *catalogGateway) ProductsByCategory(ctx context.Context, slug string, page gateway.Page) ([]entity.Product, error) {
	raw, err := g.client.get(ctx, "/api/products/category/"+url.PathEscape(slug), pageQuery(page), false)
	if err != nil {
		return nil, err
	}

	wires, err := decodeList[wireProduct](raw, "products")
	if err != nil {
		return nil, err
	}

	return mapProducts(wires), nil
}

func (g *catalogGateway) Product(ctx context.Context, id string) (*gateway.ProductDetail, error) {
	raw, err := g.client.get(ctx, "/api/products/"+url.PathEscape(id), nil, false)
	if err != nil {
		return nil, err
	}

	// The detail endpoint returns the product either bare or alongside a
	// "related" list; both shapes are accepted.
	var body struct {
		Product *wireProduct  `json:"product"`
		Data    *wireProduct  `json:"data"`
		Related []wireProduct `json:"related"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Wrap(err, "failed to decode product detail")
	}

	wire := body.Product
	if wire == nil {
		wire = body.Data
	}
	if wire == nil {
		bare, err := decodeObject[wireProduct](raw)
		if err != nil {
			return nil, err
		}
		wire = bare
	}
	if wire.toEntity().ID == "" {
		return nil, gateway.ErrNotFound
	}

	return &gateway.ProductDetail{
		Product: wire.toEntity(),
		Related: mapProducts(body.Related),
	}, nil
}

func (g *catalogGateway) Search(ctx context.Context, query string, page gateway.Page) (*gateway.SearchResult, error) {
	values := pageQuery(page)
	values.Set("q", query)

	raw, err := g.client.get(ctx, "/api/products/search", values, false)
	if err != nil {
		return nil, err
	}

	wires, err := decodeList[wireProduct](raw, "products")
	if err != nil {
		return nil, err
	}

	// Total and page ride on the envelope when present; a bare array means
	// a single page.
	var meta struct {
		Total int `json:"total"`
		Page  int `json:"page"`
	}
	_ = json.Unmarshal(raw, &meta)

	result := &gateway.SearchResult{
		Products: mapProducts(wires),
		Total:    meta.Total,
		Page:     meta.Page,
	}
	if result.Total == 0 {
		result.Total = len(result.Products)
	}
	if result.Page == 0 {
		result.Page = page.Number
	}

	return result, nil
}

func (g *catalogGateway) Suggestions(ctx context.Context, query string) ([]string, error) {
	values := url.Values{}
	values.Set("q", query)

	raw, err := g.client.get(ctx, "/api/products/search/suggestions", values, false)
	if err != nil {
		return nil, err
	}

	return decodeList[string](raw, "suggestions")
}

func (g *catalogGateway) RandomFeed(ctx context.Context, page gateway.Page) ([]entity.Product, error) {
	raw, err := g.client.get(ctx, "/api/products/random", pageQuery(page), false)
	if err != nil {
		return nil, err
	}

	wires, err := decodeList[wireProduct](raw, "products")
	if err != nil {
		return nil, err
	}

	return mapProducts(wires), nil
}

func (g *catalogGateway) TaggedFeed(ctx context.Context, tags []string) ([]entity.Product, error) {
	values := url.Values{}
	values.Set("tags", strings.Join(tags, ","))

	raw, err := g.client.get(ctx, "/api/products", values, false)
	if err != nil {
		return nil, err
	}

	wires, err := decodeList[wireProduct](raw, "products")
	if err != nil {
		return nil, err
	}

	return mapProducts(wires), nil
}
