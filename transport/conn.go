package transport

import (
	"fmt"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// netConn adapts a net.Conn (*net.UnixConn or *net.TCPConn) to Conn,
// providing raw fd access through SyscallConn for non-blocking control —
// the same raw-fd technique golang.org/x/sys/unix is used for elsewhere in
// the example pack to flip descriptor flags directly instead of going
// through a higher-level blocking API.
type netConn struct {
	net.Conn
}

func wrap(c net.Conn) *netConn {
	return &netConn{Conn: c}
}

type syscallConner interface {
	SyscallConn() (syscall.RawConn, error)
}

func (c *netConn) Fd() (uintptr, error) {
	sc, ok := c.Conn.(syscallConner)
	if !ok {
		return 0, fmt.Errorf("transport: connection does not expose a raw fd")
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return 0, err
	}
	var fd uintptr
	err = raw.Control(func(f uintptr) {
		fd = f
	})
	if err != nil {
		return 0, err
	}
	return fd, nil
}

func (c *netConn) SetNonblock(nonblocking bool) error {
	sc, ok := c.Conn.(syscallConner)
	if !ok {
		return fmt.Errorf("transport: connection does not support non-blocking mode")
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return err
	}
	var opErr error
	err = raw.Control(func(fd uintptr) {
		opErr = unix.SetNonblock(int(fd), nonblocking)
	})
	if err != nil {
		return err
	}
	return opErr
}
