// Package mocks provides hand-written test doubles for the service's
// boundary interfaces.
package mocks

import (
	"context"
	"sync"

	"github.com/infatoz/sahayak-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateFn allows test cases to script the Generate behavior.
	GenerateFn func(ctx context.Context, req *generation.Request) (*generation.Result, error)

	// Default response values used when GenerateFn is nil.
	Result *generation.Result
	Err    error

	// Call tracking for verification.
	Calls struct {
		mu       sync.Mutex
		Count    int
		Requests []*generation.Request
	}
}

// Generate implements the generation.Generator interface.
func (m *MockGenerator) Generate(ctx context.Context, req *generation.Request) (*generation.Result, error) {
	m.Calls.mu.Lock()
	m.Calls.Count++
	m.Calls.Requests = append(m.Calls.Requests, req)
	m.Calls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return m.Result, m.Err
}

// CallCount returns how many times Generate was invoked.
func (m *MockGenerator) CallCount() int {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	return m.Calls.Count
}

// Request returns the i-th recorded request.
func (m *MockGenerator) Request(i int) *generation.Request {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	return m.Calls.Requests[i]
}

// NewMockGeneratorWithResult creates a MockGenerator that always returns
// the given result.
func NewMockGeneratorWithResult(result *generation.Result) *MockGenerator {
	return &MockGenerator{Result: result}
}

// NewMockGeneratorWithError creates a MockGenerator that always fails with
// the given error.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}
