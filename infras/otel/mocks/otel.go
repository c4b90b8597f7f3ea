package mocks

import (
	"context"
	"gymhub/infras/otel"
	"sync"
)

// Otel hands out recording scopes instead of exporting spans.
type Otel struct {
	mu       sync.Mutex
	scopes   []*Scope
	shutdown bool
}

var _ otel.Otel = (*Otel)(nil)

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := newScope(spanName)

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.shutdown = true

	return nil
}

// Scope returns the most recent scope opened with spanName, or nil.
func (o *Otel) Scope(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := len(o.scopes) - 1; i >= 0; i-- {
		if o.scopes[i].Name == spanName {
			return o.scopes[i]
		}
	}

	return nil
}

func (o *Otel) IsShutdown() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.shutdown
}
