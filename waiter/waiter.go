// Package waiter polls an operation until its response matches a terminal
// acceptor, giving up after a fixed number of attempts.
package waiter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Tim020/botocore/botoerr"
	"github.com/Tim020/botocore/search"
)

// State is the outcome an acceptor transitions the waiter into.
type State string

const (
	// StateSuccess stops the waiter successfully.
	StateSuccess State = "success"
	// StateFailure stops the waiter with a WaiterError.
	StateFailure State = "failure"
	// StateRetry keeps polling.
	StateRetry State = "retry"
)

// Acceptor matches one expected value at one location in a response.
type Acceptor struct {
	// Argument is a dotted expression into the response.
	Argument string
	// Expected is compared against the value the expression yields.
	Expected any
	// State is entered when the comparison matches.
	State State
}

// Poller performs one poll of the watched operation.
type Poller func(ctx context.Context) (map[string]any, error)

type compiledAcceptor struct {
	expr     *search.Expression
	expected any
	state    State
}

// Waiter repeatedly polls until an acceptor fires or attempts run out.
type Waiter struct {
	name        string
	poll        Poller
	acceptors   []compiledAcceptor
	delay       time.Duration
	maxAttempts int
	log         *slog.Logger
}

// Option configures a Waiter.
type Option func(*Waiter)

// WithDelay sets the pause between polls.
func WithDelay(d time.Duration) Option {
	return func(w *Waiter) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithMaxAttempts caps how many polls are made before giving up.
func WithMaxAttempts(n int) Option {
	return func(w *Waiter) {
		if n > 0 {
			w.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used to trace polls.
func WithLogger(l *slog.Logger) Option {
	return func(w *Waiter) {
		if l != nil {
			w.log = l
		}
	}
}

// New creates a Waiter. Acceptor expressions are compiled up front, so a
// malformed one fails here with an InvalidExpressionError.
func New(name string, poll Poller, acceptors []Acceptor, opts ...Option) (*Waiter, error) {
	compiled := make([]compiledAcceptor, 0, len(acceptors))
	for _, a := range acceptors {
		expr, err := search.Compile(a.Argument)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledAcceptor{expr: expr, expected: a.Expected, state: a.State})
	}
	w := &Waiter{
		name:        name,
		poll:        poll,
		acceptors:   compiled,
		delay:       5 * time.Second,
		maxAttempts: 20,
		log:         slog.Default(),
	}
	for _, o := range opts {
		o(w)
	}
	return w, nil
}

// Wait polls until a success acceptor matches. A failure acceptor or an
// exhausted attempt budget is a WaiterError; poll errors propagate as-is.
func (w *Waiter) Wait(ctx context.Context) error {
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		resp, err := w.poll(ctx)
		if err != nil {
			return err
		}

		for _, a := range w.acceptors {
			if a.expr.Search(resp) != a.expected {
				continue
			}
			w.log.Debug("acceptor matched",
				slog.String("waiter", w.name),
				slog.String("argument", a.expr.String()),
				slog.String("state", string(a.state)),
				slog.Int("attempt", attempt))
			switch a.state {
			case StateSuccess:
				return nil
			case StateFailure:
				return botoerr.NewWaiterError(w.name,
					fmt.Sprintf("matched the failure state on %s", a.expr))
			}
		}

		if attempt < w.maxAttempts {
			if err := sleep(ctx, w.delay); err != nil {
				return err
			}
		}
	}
	return botoerr.NewWaiterError(w.name,
		fmt.Sprintf("max attempts (%d) exceeded", w.maxAttempts))
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
