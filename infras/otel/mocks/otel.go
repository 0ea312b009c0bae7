package mocks

import (
	"context"
	"sync"
	"todoapi/infras/otel"
)

// Otel hands out recording scopes instead of real spans.
type Otel struct {
	mu     sync.Mutex
	Scopes []*Scope
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := NewScope(spanName)
	o.Scopes = append(o.Scopes, scope)

	return ctx, scope
}

// TracedErrors returns every error recorded on any scope.
func (o *Otel) TracedErrors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var errs []error
	for _, scope := range o.Scopes {
		errs = append(errs, scope.Errors...)
	}

	return errs
}

func NewOtel() *Otel {
	return &Otel{}
}
