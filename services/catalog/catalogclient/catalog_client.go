package catalogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/myhttpclient"
	"github.com/MarcGrol/shopcart/services/catalog/catalogmodel"
)

// Catalog answers product and stock lookups. A product that does not exist
// is reported as not found, not as an error.
//
//go:generate mockgen -source=catalog_client.go -package catalogclient -destination catalog_client_mock.go Catalog
type Catalog interface {
	GetStock(c context.Context, productID int) (catalogmodel.Stock, bool, error)
	GetProduct(c context.Context, productID int) (catalogmodel.Product, bool, error)
}

type catalogClient struct {
	baseURL string
	sender  myhttpclient.HTTPSender
}

func New(baseURL string, sender myhttpclient.HTTPSender) *catalogClient {
	return &catalogClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		sender:  sender,
	}
}

func (cc catalogClient) GetStock(c context.Context, productID int) (catalogmodel.Stock, bool, error) {
	return getJSON[catalogmodel.Stock](c, cc.sender, fmt.Sprintf("%s/stock/%d", cc.baseURL, productID))
}

func (cc catalogClient) GetProduct(c context.Context, productID int) (catalogmodel.Product, bool, error) {
	return getJSON[catalogmodel.Product](c, cc.sender, fmt.Sprintf("%s/products/%d", cc.baseURL, productID))
}

func getJSON[T any](c context.Context, sender myhttpclient.HTTPSender, url string) (T, bool, error) {
	var resp T

	httpRespCode, respBody, err := sender.Send(c, http.MethodGet, url, nil)
	if err != nil {
		return resp, false, fmt.Errorf("error fetching %s: %w", url, err)
	}

	if httpRespCode == http.StatusNotFound {
		return resp, false, nil
	}

	if httpRespCode != http.StatusOK {
		return resp, false, myerrors.NewFromHTTPStatus(httpRespCode, fmt.Errorf("error fetching %s: unexpected status %d", url, httpRespCode))
	}

	if isEmpty(respBody) {
		return resp, false, nil
	}

	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return resp, false, fmt.Errorf("error parsing response of %s: %s", url, err)
	}

	return resp, true, nil
}

// isEmpty reports whether a body carries no object: nothing, null or {}.
func isEmpty(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}

	fields := map[string]json.RawMessage{}
	err := json.Unmarshal(trimmed, &fields)
	return err == nil && len(fields) == 0
}
