package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
)

// ErrNoAvailablePort is returned when every port of the range is taken.
var ErrNoAvailablePort = errors.New("no available port")

// Listen binds host on the first free port in [port, port+attempts).
// A port already in use moves on to the next one; any other bind error is
// returned as is.
func Listen(ctx context.Context, host string, port, attempts int) (net.Listener, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lc net.ListenConfig
	for i := 0; i < attempts; i++ {
		addr := net.JoinHostPort(host, strconv.Itoa(port+i))

		ln, err := lc.Listen(ctx, "tcp", addr)
		if err == nil {
			return ln, nil
		}
		if !isAddrInUse(err) {
			return nil, fmt.Errorf("binding %s: %w", addr, err)
		}
	}

	return nil, fmt.Errorf("%w in range %d-%d", ErrNoAvailablePort, port, port+attempts-1)
}

// Port returns the TCP port a listener is bound to, or 0.
func Port(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
