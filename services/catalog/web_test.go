package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mystore"
	"github.com/MarcGrol/shopcart/services/catalog/catalogmodel"
)

func TestCatalogService(t *testing.T) {

	t.Run("List products ordered by id", func(t *testing.T) {
		// setup
		_, router := setup(t)

		// when
		response := doRequest(t, router, http.MethodGet, "/products")

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"id": 1,`)
		assert.Regexp(t, `(?s)"id": 1,.*"id": 2,.*"id": 3,.*"id": 4,.*"id": 5,.*"id": 6,`, response.Body.String())
	})

	t.Run("Get product", func(t *testing.T) {
		_, router := setup(t)

		response := doRequest(t, router, http.MethodGet, "/products/3")

		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{
			"id": 3,
			"name": "Tênis Adidas Duramo Lite 2.0",
			"price": 219.9,
			"imageUrl": "https://rocketseat-cdn.s3-sa-east-1.amazonaws.com/modulo-redux/tenis3.jpg"
		}`, response.Body.String())
	})

	t.Run("Get product not exists", func(t *testing.T) {
		_, router := setup(t)

		response := doRequest(t, router, http.MethodGet, "/products/99")

		assert.Equal(t, 404, response.Code)
	})

	t.Run("Get stock", func(t *testing.T) {
		_, router := setup(t)

		response := doRequest(t, router, http.MethodGet, "/stock/6")

		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"id":6,"amount":10}`, response.Body.String())
	})

	t.Run("Get stock not exists", func(t *testing.T) {
		_, router := setup(t)

		response := doRequest(t, router, http.MethodGet, "/stock/99")

		assert.Equal(t, 404, response.Code)
	})

	t.Run("Invalid product id", func(t *testing.T) {
		_, router := setup(t)

		response := doRequest(t, router, http.MethodGet, "/stock/abc")

		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "invalid product id 'abc'")
	})

	t.Run("Stock store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := context.TODO()

		productStore, _, _ := mystore.NewInMemoryStore[catalogmodel.Product](c)
		stockStore := mystore.NewMockStore[catalogmodel.Stock](ctrl)
		stockStore.EXPECT().Get(gomock.Any(), "1").Return(catalogmodel.Stock{}, false, fmt.Errorf("datastore unavailable"))

		sut := NewService(productStore, stockStore, mylog.New("catalog"))
		router := mux.NewRouter()
		sut.RegisterEndpoints(c, router)

		response := doRequest(t, router, http.MethodGet, "/stock/1")

		assert.Equal(t, 500, response.Code)
	})
}

func doRequest(t *testing.T, router *mux.Router, method string, url string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(method, url, nil)
	assert.NoError(t, err)
	request.Host = "localhost:8888"
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func setup(t *testing.T) (context.Context, *mux.Router) {
	c := context.TODO()
	productStore, _, _ := mystore.NewInMemoryStore[catalogmodel.Product](c)
	stockStore, _, _ := mystore.NewInMemoryStore[catalogmodel.Stock](c)

	sut := NewService(productStore, stockStore, mylog.New("catalog"))
	err := sut.Seed(c)
	assert.NoError(t, err)

	router := mux.NewRouter()
	sut.RegisterEndpoints(c, router)

	return c, router
}
