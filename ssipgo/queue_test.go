package ssipgo

import (
	"bytes"
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssipgo/ssipgo/ssip"
)

// flakyConn fails its first N writes with EAGAIN, then behaves like an
// in-memory buffer. It never needs a real fd since these tests only drive
// SendNext and queue inspection, not reactor registration.
type flakyConn struct {
	buf        bytes.Buffer
	failWrites int
}

func (c *flakyConn) Read(p []byte) (int, error) { return c.buf.Read(p) }

func (c *flakyConn) Write(p []byte) (int, error) {
	if c.failWrites > 0 {
		c.failWrites--
		return 0, syscall.EAGAIN
	}
	return c.buf.Write(p)
}

func (c *flakyConn) Close() error          { return nil }
func (c *flakyConn) Fd() (uintptr, error)  { return 0, errors.New("flakyConn: no fd") }
func (c *flakyConn) SetNonblock(bool) error { return nil }

func TestQueuedClientSendNextKeepsHeadOnWouldBlock(t *testing.T) {
	conn := &flakyConn{failWrites: 1}
	client, err := NewClient(conn)
	require.NoError(t, err)
	q := NewQueuedClient(client)

	req := ssip.Stop(ssip.LastMessage())
	q.Push(req)

	sent, err := q.SendNext()
	assert.False(t, sent)
	assert.ErrorIs(t, err, ssip.ErrNotReady)

	head, ok := q.Last()
	require.True(t, ok)
	assert.Equal(t, req.Encode(), head.Encode())
	assert.True(t, q.HasNext())

	sent, err = q.SendNext()
	require.NoError(t, err)
	assert.True(t, sent)
	assert.False(t, q.HasNext())
	assert.Equal(t, "STOP self\r\n", conn.buf.String())
}

func TestQueuedClientSendNextKeepsHeadOnHardError(t *testing.T) {
	conn := &onceErrConn{flakyConn: &flakyConn{}}
	client, err := NewClient(conn)
	require.NoError(t, err)
	q := NewQueuedClient(client)

	req := ssip.Cancel(ssip.AllMessages())
	q.Push(req)

	sent, err := q.SendNext()
	assert.False(t, sent)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ssip.ErrNotReady)

	head, ok := q.Last()
	require.True(t, ok)
	assert.Equal(t, req.Encode(), head.Encode())
}

type onceErrConn struct {
	*flakyConn
	tripped bool
}

func (c *onceErrConn) Write(p []byte) (int, error) {
	if !c.tripped {
		c.tripped = true
		return 0, errors.New("onceErrConn: simulated hard failure")
	}
	return c.flakyConn.Write(p)
}
