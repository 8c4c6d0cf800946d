package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/stretchr/testify/assert"
)

func Test_ContextHandler_AddsRequestID(t *testing.T) {
	// given
	var buf bytes.Buffer
	log := slog.New(NewContextHandler(slog.NewJSONHandler(&buf, nil)))
	ctx := web.WithRequestID(context.Background(), "req-42")
	// when
	log.InfoContext(ctx, "hello")
	// then
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func Test_ContextHandler_NoRequestID(t *testing.T) {
	// given
	var buf bytes.Buffer
	log := slog.New(NewContextHandler(slog.NewJSONHandler(&buf, nil)))
	// when
	log.InfoContext(context.Background(), "hello")
	// then
	assert.NotContains(t, buf.String(), "request_id")
}
