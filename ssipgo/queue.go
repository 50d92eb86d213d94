package ssipgo

import (
	"errors"
	"syscall"

	"github.com/ssipgo/ssipgo/ssip"
)

const initialQueueCapacity = 4

// QueuedClient wraps a non-blocking Client with a FIFO of pending requests,
// for callers driving their own reactor (poll/epoll/kqueue) instead of
// blocking on I/O. SendNext/ReceiveNext are meant to be called once per
// writable/readable readiness event.
type QueuedClient struct {
	client   *Client
	requests []ssip.Request
}

// NewQueuedClient wraps client (which must be dialed with a non-blocking
// transport.Mode) with an empty request queue.
func NewQueuedClient(client *Client) *QueuedClient {
	return &QueuedClient{client: client, requests: make([]ssip.Request, 0, initialQueueCapacity)}
}

// Push appends request to the back of the queue.
func (q *QueuedClient) Push(request ssip.Request) {
	q.requests = append(q.requests, request)
	if q.client.metrics != nil {
		q.client.metrics.SetQueueDepth(len(q.requests))
	}
}

// Pop removes and returns the front of the queue, if any.
func (q *QueuedClient) Pop() (ssip.Request, bool) {
	if len(q.requests) == 0 {
		return ssip.Request{}, false
	}
	req := q.requests[0]
	q.requests = q.requests[1:]
	if q.client.metrics != nil {
		q.client.metrics.SetQueueDepth(len(q.requests))
	}
	return req, true
}

// Last returns the request at the back of the queue, if any, without
// removing it.
func (q *QueuedClient) Last() (ssip.Request, bool) {
	if len(q.requests) == 0 {
		return ssip.Request{}, false
	}
	return q.requests[len(q.requests)-1], true
}

// HasNext reports whether a request is pending.
func (q *QueuedClient) HasNext() bool {
	return len(q.requests) > 0
}

// SendNext writes the request at the front of the queue, if any, reporting
// whether one was sent.
//
// Unlike the upstream implementation this is modeled on, the head request
// is popped only after a successful write. A would-block error (reported
// as ssip.ErrNotReady) or any other write failure leaves the request at
// the front of the queue so a later readiness event can retry it without
// losing data.
func (q *QueuedClient) SendNext() (bool, error) {
	if len(q.requests) == 0 {
		return false, nil
	}
	req := q.requests[0]
	if _, err := q.client.Send(req); err != nil {
		// A failed flush leaves the bufio.Writer's error set and the request
		// buffered; reset it so the retry writes the request afresh.
		q.client.w.Reset(q.client.conn)
		if isWouldBlock(err) {
			if q.client.metrics != nil {
				q.client.metrics.ObserveNotReady()
			}
			return false, ssip.ErrNotReady
		}
		return false, err
	}
	q.requests = q.requests[1:]
	if q.client.metrics != nil {
		q.client.metrics.SetQueueDepth(len(q.requests))
	}
	return true, nil
}

// ReceiveNext reads one reply frame. Call this once per readable readiness
// event reported by the driving reactor.
func (q *QueuedClient) ReceiveNext() (ssip.Frame, error) {
	f, err := q.client.Receive()
	if err != nil && isWouldBlock(err) {
		if q.client.metrics != nil {
			q.client.metrics.ObserveNotReady()
		}
		return ssip.Frame{}, ssip.ErrNotReady
	}
	return f, err
}

// isWouldBlock reports whether err ultimately wraps EAGAIN/EWOULDBLOCK,
// the error a non-blocking fd returns when the operation would have
// blocked.
func isWouldBlock(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK)
}
