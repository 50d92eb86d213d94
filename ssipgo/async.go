package ssipgo

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ssipgo/ssipgo/ssip"
)

// ErrClientPoisoned is returned by every AsyncClient call once an earlier
// call was canceled mid-flight. Go has no way to abort a goroutine blocked
// on a read/write without risking it land mid-frame on the wire, so a
// canceled call leaves the connection's read/write position undefined and
// the client unusable.
var ErrClientPoisoned = errors.New("ssipgo: async client poisoned by a canceled call")

type asyncOutcome struct {
	val any
	err error
}

type asyncTask struct {
	id     uuid.UUID
	run    func(c *Client) (any, error)
	result chan asyncOutcome
}

// AsyncClient adapts the blocking Client to goroutine/channel-based
// concurrency: a single goroutine owns the connection and runs queued
// calls one at a time, while callers block on a per-call result channel
// instead of on I/O directly. This is Go's idiomatic substitute for an
// async/await engine — the owning goroutine is the task runtime.
type AsyncClient struct {
	client *Client
	tasks  chan asyncTask

	mu      sync.Mutex
	poisons error
}

// NewAsyncClient starts the owning goroutine for client and returns a
// handle to submit calls against it. Close stops the goroutine.
func NewAsyncClient(client *Client) *AsyncClient {
	a := &AsyncClient{
		client: client,
		tasks:  make(chan asyncTask),
	}
	go a.run()
	return a
}

func (a *AsyncClient) run() {
	for task := range a.tasks {
		a.client.log.Debug("async task starting", "task_id", task.id)
		val, err := task.run(a.client)
		a.client.log.Debug("async task finished", "task_id", task.id, "error", err)
		task.result <- asyncOutcome{val: val, err: err}
	}
}

// Close stops the owning goroutine and closes the underlying connection.
func (a *AsyncClient) Close() error {
	close(a.tasks)
	return a.client.Close()
}

func (a *AsyncClient) poisoned() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.poisons
}

func (a *AsyncClient) poison(cause error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.poisons == nil {
		a.poisons = cause
	}
}

// submit runs fn on the owning goroutine and waits for its result, or for
// ctx to be canceled. A cancellation poisons the client: the in-flight
// call keeps running against the connection with no one left to read its
// result, so every later call is refused rather than risk interleaving
// with it.
func (a *AsyncClient) submit(ctx context.Context, fn func(c *Client) (any, error)) (any, error) {
	if err := a.poisoned(); err != nil {
		return nil, err
	}
	task := asyncTask{id: uuid.New(), run: fn, result: make(chan asyncOutcome, 1)}
	select {
	case a.tasks <- task:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case out := <-task.result:
		return out.val, out.err
	case <-ctx.Done():
		a.poison(ErrClientPoisoned)
		return nil, ctx.Err()
	}
}

// SetClientName announces the connection's identity.
func (a *AsyncClient) SetClientName(ctx context.Context, name ssip.ClientName) error {
	_, err := a.submit(ctx, func(c *Client) (any, error) {
		return nil, c.SetClientName(name)
	})
	return err
}

// Speak sends text as a single-message SPEAK block and returns the queued
// message id.
func (a *AsyncClient) Speak(ctx context.Context, text string) (ssip.MessageID, error) {
	v, err := a.submit(ctx, func(c *Client) (any, error) {
		return c.Speak(ctx, text)
	})
	if err != nil {
		return 0, err
	}
	return v.(ssip.MessageID), nil
}

// Stop halts the messages selected by scope.
func (a *AsyncClient) Stop(ctx context.Context, scope ssip.MessageScope) error {
	_, err := a.submit(ctx, func(c *Client) (any, error) {
		return nil, c.Stop(scope)
	})
	return err
}

// Cancel removes the messages selected by scope from the queue.
func (a *AsyncClient) Cancel(ctx context.Context, scope ssip.MessageScope) error {
	_, err := a.submit(ctx, func(c *Client) (any, error) {
		return nil, c.Cancel(scope)
	})
	return err
}

// SetRate sets the speech rate for scope.
func (a *AsyncClient) SetRate(ctx context.Context, scope ssip.ClientScope, rate int8) error {
	_, err := a.submit(ctx, func(c *Client) (any, error) {
		return nil, c.SetRate(scope, rate)
	})
	return err
}

// GetRate queries the current speech rate.
func (a *AsyncClient) GetRate(ctx context.Context) (int8, error) {
	v, err := a.submit(ctx, func(c *Client) (any, error) {
		return c.GetRate()
	})
	if err != nil {
		return 0, err
	}
	return v.(int8), nil
}

// ListSynthesisVoices lists the synthesizer's native voices.
func (a *AsyncClient) ListSynthesisVoices(ctx context.Context) ([]ssip.SynthesisVoice, error) {
	v, err := a.submit(ctx, func(c *Client) (any, error) {
		return c.ListSynthesisVoices()
	})
	if err != nil {
		return nil, err
	}
	return v.([]ssip.SynthesisVoice), nil
}

// ReceiveEvent reads the next asynchronous notification frame. Callers
// typically run this in a loop on its own goroutine after enabling
// notifications with SetNotification.
func (a *AsyncClient) ReceiveEvent(ctx context.Context) (ssip.Event, error) {
	v, err := a.submit(ctx, func(c *Client) (any, error) {
		return c.ReceiveEvent()
	})
	if err != nil {
		return ssip.Event{}, err
	}
	return v.(ssip.Event), nil
}

// Quit closes the session gracefully.
func (a *AsyncClient) Quit(ctx context.Context) error {
	_, err := a.submit(ctx, func(c *Client) (any, error) {
		return nil, c.Quit()
	})
	return err
}
