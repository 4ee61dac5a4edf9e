package web

import (
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gomechip/pkg/display/event"
	"net"
	"sync/atomic"
	"time"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Client is a browser connected over a websocket.
type Client struct {
	hub        *hub
	conn       *websocket.Conn
	Send       chan []byte
	ID         uint32
	RemoteAddr string

	events     chan<- event.Event
	avgLatency atomic.Uint32 // milliseconds
}

func (c *Client) latency() uint16 {
	return uint16(c.avgLatency.Load())
}

// leave unregisters the client unless the hub has already shut down.
func (c *Client) leave() {
	select {
	case c.hub.unregister <- c:
	case <-c.hub.done:
	}
}

// ReadPump translates client messages into emulator events.
func (c *Client) ReadPump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		c.leave()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(64)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) == 0 {
			continue
		}

		var e event.Event
		switch message[0] {
		case KeyEvent:
			if len(message) < 3 || message[1] > 0xF {
				continue
			}
			if message[2] == 0 {
				e = event.Release(message[1])
			} else {
				e = event.Press(message[1])
			}
		case PausePlay:
			e = event.Event{Type: event.Pause}
		case ResetRequest:
			e = event.Event{Type: event.Reset}
		case SaveRequest:
			e = event.Event{Type: event.SaveState}
		case LoadRequest:
			e = event.Event{Type: event.LoadState}
		case Closing:
			return
		default:
			continue
		}

		select {
		case c.events <- e:
		default:
			// emulator is not polling, drop the input
		}
	}
}

// WritePump writes queued messages to the connection and keeps it alive.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			// hub closed the channel
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// try to write message to client
			if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				c.leave()
				return
			}

			// update average latency
			if tcp, ok := c.conn.UnderlyingConn().(*net.TCPConn); ok {
				if rtt, err := roundTrip(tcp); err == nil {
					avg := (c.avgLatency.Load()*9 + uint32(rtt.Milliseconds())) / 10
					c.avgLatency.Store(avg)
				}
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.leave()
				return
			}
		}
	}
}
