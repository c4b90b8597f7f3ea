package mocks

import (
	"gymhub/infras/otel"
	"maps"
	"sync"
)

// Scope keeps what was reported to it so tests can assert on spans.
type Scope struct {
	Name string

	mu         sync.Mutex
	events     []string
	errors     []error
	attributes map[string]any
	ended      bool
}

var _ otel.Scope = (*Scope)(nil)

func newScope(name string) *Scope {
	return &Scope{Name: name, attributes: map[string]any{}}
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ended = true
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = append(s.errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maps.Copy(s.attributes, attributes)
}

func (s *Scope) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.events...)
}

func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]error(nil), s.errors...)
}

func (s *Scope) Attributes() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return maps.Clone(s.attributes)
}

func (s *Scope) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}
