package transport

import (
	"context"
	"fmt"
	"net"
)

// DialTCP dials a TCP endpoint (host:port) and configures it per mode.
func DialTCP(ctx context.Context, addr string, mode Mode) (Conn, error) {
	var d net.Dialer
	raw, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial tcp %s: %w", addr, err)
	}
	c := wrap(raw)
	if mode.kind == modeNonBlocking {
		if err := c.SetNonblock(true); err != nil {
			raw.Close()
			return nil, fmt.Errorf("transport: set nonblocking: %w", err)
		}
		return c, nil
	}
	if err := apply(raw, mode); err != nil {
		raw.Close()
		return nil, err
	}
	return c, nil
}
