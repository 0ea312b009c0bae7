package otel_test

import (
	"context"
	"errors"
	"testing"
	"todoapi/config"
	"todoapi/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "todoapi"

	tracer, cleanup, err := otel.New(cfg)
	require.NoError(t, err)

	defer cleanup()

	ctx, scope := tracer.NewScope(context.Background(), "handler", "handler.GetTodo")

	scope.SetAttributes(map[string]any{
		"todo.id":   7,
		"todo.done": false,
		"query":     "SELECT 1",
		"tags":      []string{"a"},
		"other":     1.5,
	})
	scope.AddEvent("loaded")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	assert.True(t, oteltrace.SpanContextFromContext(ctx).IsValid())
}
