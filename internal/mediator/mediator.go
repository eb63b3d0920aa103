// Package mediator routes each request to exactly one handler and fans
// buffered domain events out to their subscribers. Registration happens once
// at startup; a duplicate or missing handler is a configuration defect and
// panics rather than producing a failure outcome.
package mediator

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/pagination"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"
)

// ConfigurationError reports broken handler wiring. It is raised via panic at
// registration or resolution time and is meant to surface during startup
// checks, never during steady-state traffic.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string { return e.msg }

func configPanic(format string, args ...any) {
	panic(&ConfigurationError{msg: fmt.Sprintf(format, args...)})
}

// Handler processes one request shape and returns an outcome.
type Handler[R any, T any] interface {
	Handle(ctx context.Context, req R) result.Result[T]
}

type Mediator struct {
	handlers      map[reflect.Type]func(ctx context.Context, req any) any
	validators    map[reflect.Type]func(req any) []FieldFailure
	eventHandlers map[reflect.Type][]func(ctx context.Context, event domain.Event) error
}

func New() *Mediator {
	return &Mediator{
		handlers:      make(map[reflect.Type]func(ctx context.Context, req any) any),
		validators:    make(map[reflect.Type]func(req any) []FieldFailure),
		eventHandlers: make(map[reflect.Type][]func(ctx context.Context, event domain.Event) error),
	}
}

func requestType[R any]() reflect.Type {
	return reflect.TypeOf((*R)(nil)).Elem()
}

func register[R any, T any](m *Mediator, h Handler[R, T]) {
	t := requestType[R]()
	if _, dup := m.handlers[t]; dup {
		configPanic("mediator: handler already registered for %s", t)
	}
	m.handlers[t] = func(ctx context.Context, req any) any {
		return h.Handle(ctx, req.(R))
	}
}

// RegisterCommand wires a command without a result payload.
func RegisterCommand[C any](m *Mediator, h Handler[C, result.Void]) {
	register(m, h)
}

// RegisterRequest wires a command that returns a payload.
func RegisterRequest[C any, T any](m *Mediator, h Handler[C, T]) {
	register(m, h)
}

// RegisterQuery wires a single-item query.
func RegisterQuery[Q any, T any](m *Mediator, h Handler[Q, T]) {
	register(m, h)
}

// RegisterCollectionQuery wires a paginated collection query.
func RegisterCollectionQuery[Q any, T any](m *Mediator, h Handler[Q, pagination.Page[T]]) {
	register(m, h)
}

// Send resolves the single handler for the request's type, runs the request's
// validator if one is registered, and invokes the handler.
func Send[R any, T any](ctx context.Context, m *Mediator, req R) result.Result[T] {
	t := requestType[R]()
	handle, ok := m.handlers[t]
	if !ok {
		configPanic("mediator: no handler registered for %s", t)
	}
	if validate, ok := m.validators[t]; ok {
		if failures := validate(req); len(failures) > 0 {
			return result.Failure[T](collapse(failures))
		}
	}
	out := handle(ctx, req)
	res, ok := out.(result.Result[T])
	if !ok {
		configPanic("mediator: handler for %s returned %T", t, out)
	}
	return res
}

// SendCommand dispatches a payload-less command.
func SendCommand[C any](ctx context.Context, m *Mediator, cmd C) result.Result[result.Void] {
	return Send[C, result.Void](ctx, m, cmd)
}

// SendCollection dispatches a paginated collection query.
func SendCollection[Q any, T any](ctx context.Context, m *Mediator, query Q) result.Result[pagination.Page[T]] {
	return Send[Q, pagination.Page[T]](ctx, m, query)
}

// Subscribe adds an event handler for the event's concrete type. Multiple
// handlers per event are invoked in registration order.
func Subscribe[E domain.Event](m *Mediator, h func(ctx context.Context, event E) error) {
	t := requestType[E]()
	m.eventHandlers[t] = append(m.eventHandlers[t], func(ctx context.Context, event domain.Event) error {
		return h(ctx, event.(E))
	})
}

// Publish invokes every subscriber of each event's concrete type, awaited as
// one batch. A handler error aborts the batch and propagates to the caller;
// there is no per-handler isolation.
func (m *Mediator) Publish(ctx context.Context, events ...domain.Event) error {
	for _, event := range events {
		for _, handle := range m.eventHandlers[reflect.TypeOf(event)] {
			if err := handle(ctx, event); err != nil {
				return err
			}
		}
	}
	return nil
}
