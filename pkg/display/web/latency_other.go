//go:build !linux

package web

import (
	"errors"
	"net"
	"time"
)

func roundTrip(*net.TCPConn) (time.Duration, error) {
	return 0, errors.New("round trip time is only available on linux")
}
