package web

import (
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gomechip/pkg/log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// hub tracks the connected clients and fans messages out to them. All
// fields are owned by the run goroutine.
type hub struct {
	clients map[*Client]bool
	cache   *cache

	// last frame and server info broadcast, replayed to new clients
	current, info []byte

	broadcast            chan []byte
	register, unregister chan *Client
	done                 chan struct{}
	stopOnce             sync.Once

	ids atomic.Uint32
	log log.Logger
}

func newHub(c *cache, l log.Logger) *hub {
	return &hub{
		clients:    make(map[*Client]bool),
		cache:      c,
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        l,
	}
}

func (w *hub) run() {
	// periodic latency updates
	t := time.NewTicker(time.Second)
	defer t.Stop()

	for {
		select {
		case <-w.done:
			for c := range w.clients {
				close(c.Send)
				delete(w.clients, c)
			}
			return
		case c := <-w.register:
			w.clients[c] = true
			w.log.Infof("web: client %d connected from %s", c.ID, c.RemoteAddr)

			// bring the client up to date with the frames it may be sent
			// by index
			w.cache.RLock()
			sync := append([]byte{FrameCacheSync}, w.cache.sync()...)
			w.cache.RUnlock()
			c.Send <- sync
			for _, msg := range [][]byte{w.info, w.current} {
				if msg != nil {
					c.Send <- msg
				}
			}
		case c := <-w.unregister:
			if _, ok := w.clients[c]; ok {
				delete(w.clients, c)
				close(c.Send)
				w.log.Infof("web: client %d disconnected", c.ID)
			}
		case msg := <-w.broadcast:
			switch msg[0] {
			case Frame, FrameCache:
				w.current = msg
			case ServerInfo:
				w.info = msg
			}
			for c := range w.clients {
				select {
				case c.Send <- msg:
				default:
					// client is not keeping up
					close(c.Send)
					delete(w.clients, c)
				}
			}
		case <-t.C:
			for c := range w.clients {
				ms := c.latency()
				select {
				case c.Send <- []byte{ClientInfo, uint8(ms), uint8(ms >> 8)}:
				default:
				}
			}
		}
	}
}

// send queues a message for every client. Frames wait for room, since
// later messages refer to them by cache index; anything else is dropped
// when the hub is behind.
func (w *hub) send(msg []byte) {
	if msg[0] == Frame {
		select {
		case w.broadcast <- msg:
		case <-w.done:
		}
		return
	}

	select {
	case w.broadcast <- msg:
	default:
	}
}

// stop disconnects every client and ends run. It is safe to call more
// than once.
func (w *hub) stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
}

// serveWs upgrades the connection and spawns the client pumps.
func (w *hub) serveWs(d *webDriver) http.HandlerFunc {
	return func(wr http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(wr, r, nil)
		if err != nil {
			w.log.Errorf("web: upgrading connection: %v", err)
			return
		}

		c := &Client{
			hub:        w,
			conn:       conn,
			Send:       make(chan []byte, 256),
			ID:         w.ids.Add(1),
			RemoteAddr: r.RemoteAddr,
			events:     d.events,
		}

		select {
		case w.register <- c:
		case <-w.done:
			conn.Close()
			return
		}

		go c.ReadPump()
		go c.WritePump()
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 4,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
