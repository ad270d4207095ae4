package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/1broseidon/spiralwm/internal/wm"
)

var errLoopAborted = errors.New("event loop aborted")

// eventLoop is the part of the core a loopService drives.
type eventLoop interface {
	Run(ctx context.Context) error
}

// loopService runs the event loop exactly once under the supervisor. When
// the loop ends, for any reason, the whole tree is torn down.
type loopService struct {
	loop eventLoop
	once sync.Once
	done chan struct{}

	mu  sync.Mutex
	err error
}

var _ eventLoop = (*wm.Core)(nil)

func newLoopService(loop eventLoop) *loopService {
	return &loopService{
		loop: loop,
		done: make(chan struct{}),
	}
}

func (s *loopService) String() string {
	return "wm.Core"
}

func (s *loopService) Serve(ctx context.Context) error {
	s.once.Do(func() {
		defer close(s.done)
		s.setErr(errLoopAborted)
		s.setErr(s.loop.Run(ctx))
	})

	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %w", suture.ErrTerminateSupervisorTree, err)
	}
	return suture.ErrTerminateSupervisorTree
}

func (s *loopService) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Err returns the error the loop ended with.
func (s *loopService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Wait blocks until the loop has returned, or timeout elapses. It reports
// whether the loop returned.
func (s *loopService) Wait(timeout time.Duration) bool {
	select {
	case <-s.done:
		return true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-s.done:
		return true
	case <-timer.C:
		return false
	}
}
