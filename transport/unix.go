package transport

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
)

// DefaultSocketPath resolves the per-user speech-dispatcher socket path
// following the freedesktop.org XDG Base Directory runtime-directory
// convention, the same way the daemon's own clients locate it.
func DefaultSocketPath() (string, error) {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		return "", fmt.Errorf("transport: XDG_RUNTIME_DIR is not set")
	}
	return filepath.Join(dir, "speech-dispatcher", "speechd.sock"), nil
}

// DialUnix dials a Unix-domain socket at path and configures it per mode.
func DialUnix(ctx context.Context, path string, mode Mode) (Conn, error) {
	var d net.Dialer
	raw, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("transport: dial unix %s: %w", path, err)
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
