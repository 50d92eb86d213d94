package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialUnixRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/test.sock"
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err == nil {
			accepted <- c
		}
	}()

	conn, err := DialUnix(context.Background(), path, ModeBlocking())
	require.NoError(t, err)
	defer conn.Close()

	server := <-accepted
	defer server.Close()

	_, err = conn.Write([]byte("ping"))
	require.NoError(t, err)

	buf := make([]byte, 4)
	_, err = server.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "ping", string(buf))
}

func TestDialTCPAppliesTimeoutMode(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		c, err := ln.Accept()
		if err == nil {
			defer c.Close()
			// Never write back; client read should hit its deadline.
			time.Sleep(50 * time.Millisecond)
		}
	}()

	conn, err := DialTCP(context.Background(), ln.Addr().String(), ModeTimeout(10*time.Millisecond))
	require.NoError(t, err)
	defer conn.Close()

	buf := make([]byte, 1)
	_, err = conn.Read(buf)
	require.Error(t, err)
	var netErr net.Error
	if assert.ErrorAs(t, err, &netErr) {
		assert.True(t, netErr.Timeout())
	}
}

func TestDefaultSocketPathRequiresXDGRuntimeDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	_, err := DefaultSocketPath()
	assert.Error(t, err)

	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	path, err := DefaultSocketPath()
	require.NoError(t, err)
	assert.Equal(t, "/run/user/1000/speech-dispatcher/speechd.sock", path)
}

func TestNonblockingModeRoundTripsOnFd(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/nb.sock"
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err == nil {
			accepted <- c
		}
	}()

	conn, err := DialUnix(context.Background(), path, ModeNonBlocking())
	require.NoError(t, err)
	defer conn.Close()

	fd, err := conn.Fd()
	require.NoError(t, err)
	assert.NotZero(t, fd)

	server := <-accepted
	defer server.Close()
}
