package mylog

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopcart/lib/mycontext"
)

func TestStandardLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newStandardLogger("cart").(standardLogger)
	logger.log.Out = buf
	logger.log.Formatter = &logrus.JSONFormatter{}

	c := context.WithValue(context.TODO(), mycontext.CtxTraceContext{}, "projects/p/traces/abc")
	logger.Log(c, "42", SeverityWarn, "Product %d is out of stock", 42)

	got := map[string]string{}
	err := json.Unmarshal(buf.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, "warning", got["level"])
	assert.Equal(t, "cart", got["component"])
	assert.Equal(t, "42", got["aggregate"])
	assert.Equal(t, "projects/p/traces/abc", got["trace"])
	assert.Equal(t, "Product 42 is out of stock", got["msg"])
}

func TestTraceFromContext(t *testing.T) {
	assert.Equal(t, "", traceFromContext(context.TODO()))
	assert.Equal(t, "t1", traceFromContext(context.WithValue(context.TODO(), mycontext.CtxTraceContext{}, "t1")))
}

func TestGcloudEntry(t *testing.T) {
	e := entry{Component: "cart", Severity: "INFO", Message: "cart:loaded"}
	assert.Equal(t, `{"component":"cart","severity":"INFO","message":"cart:loaded"}`, e.String())
}
