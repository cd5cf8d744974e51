package myhttp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/mylog"
)

func TestResponseWriter(t *testing.T) {
	c := context.TODO()
	writer := NewWriter(mylog.New("test"))

	t.Run("Write error", func(t *testing.T) {
		response := httptest.NewRecorder()
		writer.WriteError(c, response, 3, myerrors.NewNotFoundError(fmt.Errorf("product 7 not found")))

		assert.Equal(t, http.StatusNotFound, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"errorCode":3,"message":"status: 404, err: product 7 not found"}`, response.Body.String())
	})

	t.Run("Write success", func(t *testing.T) {
		response := httptest.NewRecorder()
		writer.Write(c, response, http.StatusOK, map[string]int{"size": 2})

		assert.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"size":2}`, response.Body.String())
	})
}

func TestHostnameWithScheme(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.Host = "localhost:8080"
	assert.Equal(t, "http://localhost:8080", HostnameWithScheme(r))

	r.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://localhost:8080", HostnameWithScheme(r))
}
