// Package listeners sets up the sockets the API server accepts
// connections on.
package listeners

import (
	"net"

	"github.com/docker/go-connections/sockets"
	"github.com/pkg/errors"
)

// Init creates new listeners for the server.
func Init(proto, addr string) ([]net.Listener, error) {
	ls := []net.Listener{}

	switch proto {
	case "tcp":
		l, err := sockets.NewTCPSocket(addr, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "listening on %s", addr)
		}
		ls = append(ls, l)
	default:
		return nil, errors.Errorf("invalid protocol format: %q", proto)
	}

	return ls, nil
}
