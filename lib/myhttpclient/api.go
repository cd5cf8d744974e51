package myhttpclient

import (
	"context"
	"time"
)

//go:generate mockgen -source=api.go -package myhttpclient -destination httpClient_mock.go HTTPSender
type HTTPSender interface {
	Send(c context.Context, method string, url string, body []byte) (int, []byte, error)
}

// New returns a JSON sender. A zero timeout means requests wait as long as
// their context allows.
func New(timeout time.Duration) HTTPSender {
	return newJSONHTTPClient(timeout)
}
