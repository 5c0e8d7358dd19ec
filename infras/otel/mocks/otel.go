// Package mocks provides a no-op tracer for tests.
package mocks

import (
	"context"
	"hostel/infras/otel"
)

type noopOtel struct{}

func NewOtel() otel.Otel {
	return noopOtel{}
}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (noopOtel) Shutdown(_ context.Context) error {
	return nil
}

type noopScope struct{}

func NewScope() otel.Scope {
	return noopScope{}
}

func (noopScope) End() {}
func (noopScope) TraceError(_ error) {}
func (noopScope) TraceIfError(_ error) {}
func (noopScope) AddEvent(_ string) {}
func (noopScope) SetAttribute(_ string, _ any) {}
func (noopScope) SetAttributes(_ map[string]any) {}
