// Package supervise runs the long-lived pieces of the window manager under a
// suture supervisor tree.
package supervise

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/thejerf/suture/v4"
)

// New returns a supervisor that reports its events to logger.
func New(name string, logger *slog.Logger) *suture.Supervisor {
	if logger == nil {
		logger = slog.Default()
	}
	return suture.New(name, suture.Spec{
		EventHook: EventHook(logger),
	})
}

func EventHook(logger *slog.Logger) suture.EventHook {
	return func(ei suture.Event) {
		switch e := ei.(type) {
		case suture.EventStopTimeout:
			logger.Info("service failed to terminate in a timely manner", slog.String("supervisor", e.SupervisorName), slog.String("service", e.ServiceName))
		case suture.EventServicePanic:
			logger.Warn("caught a service panic", slog.String("service", e.ServiceName), slog.String("panic", e.PanicMsg))
			logger.Debug(e.Stacktrace)
		case suture.EventServiceTerminate:
			logger.Error("service failed", slog.Any("error", e.Err), slog.String("supervisor", e.SupervisorName), slog.String("service", e.ServiceName))
		case suture.EventBackoff:
			logger.Debug("too many service failures, entering backoff", slog.String("supervisor", e.SupervisorName))
		case suture.EventResume:
			logger.Debug("exiting backoff", slog.String("supervisor", e.SupervisorName))
		default:
			b, _ := json.Marshal(e)
			logger.Warn("unknown supervisor event", "type", int(e.Type()), "event", string(b))
		}
	}
}

// Service forces the use of the String method, which names the service in
// supervisor events.
type Service interface {
	String() string
	suture.Service
}

// Add adds service to super with its errors sanitized.
func Add(super *suture.Supervisor, service Service) suture.ServiceToken {
	return super.Add(sanitizeService{Service: service})
}

type sanitizeService struct {
	Service
}

func (s sanitizeService) Serve(ctx context.Context) error {
	return SanitizeError(ctx, s.Service.Serve(ctx))
}

// SanitizeError keeps err from being read as a context error unless ctx is
// really done, since suture stops restarting a service that returns one.
func SanitizeError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if !(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return err
	}

	var newErrs [3]error

	if errors.Is(err, suture.ErrDoNotRestart) {
		newErrs[0] = suture.ErrDoNotRestart
	}

	if errors.Is(err, suture.ErrTerminateSupervisorTree) {
		newErrs[1] = suture.ErrTerminateSupervisorTree
	}

	newErrs[2] = errors.New(err.Error())

	return errors.Join(newErrs[:]...)
}

// Func adapts a function to Service.
type Func struct {
	name string
	fn   func(ctx context.Context) error
}

func NewFunc(name string, fn func(ctx context.Context) error) Func {
	return Func{
		name: name,
		fn:   fn,
	}
}

func (s Func) String() string {
	return s.name
}

func (s Func) Serve(ctx context.Context) error {
	return s.fn(ctx)
}
