package backend

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogGateway_CategoriesSendRevalidationHint(t *testing.T) {
	var gotCache string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCache = r.Header.Get("Cache-Control")
		w.Write([]byte(`{"categories":[{"_id":"c1","name":"Shoes","slug":"shoes"}]}`))
	})

	catalog := NewCatalogGateway(newTestClient(t, handler, &memorySessions{}))
	categories, err := catalog.Categories(context.Background())

	require.NoError(t, err)
	// The category list is the one fetch that hints revalidation instead of
	// forbidding the cache outright.
	assert.Equal(t, "no-cache", gotCache)
	require.Len(t, categories, 1)
	assert.Equal(t, "shoes", categories[0].Slug)
}

func TestCatalogGateway_SearchQueryAndPaging(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"products":[{"_id":"p1","name":"Boots"}],"total":14,"page":2}`))
	})

	catalog := NewCatalogGateway(newTestClient(t, handler, &memorySessions{}))
	result, err := catalog.Search(context.Background(), "boo", gateway.Page{Number: 2, Limit: 10})

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "q=boo")
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "limit=10")
	require.Len(t, result.Products, 1)
	assert.Equal(t, 14, result.Total)
	assert.Equal(t, 2, result.Page)
}

func TestCatalogGateway_ProductDetailShapes(t *testing.T) {
	cases := map[string]string{
		"bare":         `{"_id":"p1","name":"Boots","price":100}`,
		"product key":  `{"product":{"_id":"p1","name":"Boots","price":100},"related":[{"_id":"p2"}]}`,
		"data wrapper": `{"data":{"_id":"p1","name":"Boots","price":100}}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})

			catalog := NewCatalogGateway(newTestClient(t, handler, &memorySessions{}))
			detail, err := catalog.Product(context.Background(), "p1")

			require.NoError(t, err)
			assert.Equal(t, "p1", detail.Product.ID)
			assert.Equal(t, "Boots", detail.Product.Name)
		})
	}
}

func TestCatalogGateway_TaggedFeed(t *testing.T) {
	var gotTags string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTags = r.URL.Query().Get("tags")
		w.Write([]byte(`[{"_id":"d1","status":"active","stock":2}]`))
	})

	catalog := NewCatalogGateway(newTestClient(t, handler, &memorySessions{}))
	products, err := catalog.TaggedFeed(context.Background(), []string{"deals", "trending"})

	require.NoError(t, err)
	assert.Equal(t, "deals,trending", gotTags)
	require.Len(t, products, 1)
	assert.True(t, products[0].Purchasable())
}

func TestCartGateway_RoundTrip(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "u1", r.URL.Query().Get("userId"))
		w.Write([]byte(`{"items":[{"productId":"p1","price":500,"quantity":2,"stock":3}]}`))
	})

	sessions := &memorySessions{}
	require.NoError(t, sessions.Save(sessionFor("u1")))

	carts := NewCartGateway(newTestClient(t, handler, sessions))
	cart, err := carts.Cart(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].InStock)
}
