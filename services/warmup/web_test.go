package warmup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcart/lib/mystorage"
)

const cartKey = "@RocketShoes:cart"

func TestWarmup(t *testing.T) {

	t.Run("Storage reachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router, storage := setup(ctrl)

		// given
		storage.EXPECT().GetItem(gomock.Any(), cartKey).Return("", false, nil)

		// when
		response := doRequest(t, router)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"message":"Successfully processed warmup request"}`, response.Body.String())
	})

	t.Run("Storage unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router, storage := setup(ctrl)

		storage.EXPECT().GetItem(gomock.Any(), cartKey).Return("", false, fmt.Errorf("connection refused"))

		response := doRequest(t, router)

		assert.Equal(t, 500, response.Code)
		assert.Contains(t, response.Body.String(), "connection refused")
	})
}

func doRequest(t *testing.T, router *mux.Router) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, "/_ah/warmup", nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func setup(ctrl *gomock.Controller) (*mux.Router, *mystorage.MockLocalStorage) {
	storage := mystorage.NewMockLocalStorage(ctrl)

	router := mux.NewRouter()
	NewService(storage, cartKey).RegisterEndpoints(context.TODO(), router)

	return router, storage
}
