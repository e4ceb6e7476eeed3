package realtime

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/printshophq/printshop-admin/internal/events"
	"github.com/printshophq/printshop-admin/internal/logger"
)

// Handler receives one realtime event.
type Handler func(ev events.Event)

// Subscription identifies one registered handler so it can be removed
// with Off.
type Subscription struct {
	event string
	id    int
}

// Channel is the console's persistent event connection. One read loop
// dispatches events to handlers in transport arrival order; handlers for
// the same event fire in registration order.
type Channel struct {
	url string

	// TokenSource supplies the bearer token appended to the dial URL as
	// ?token=. Websocket clients cannot set an Authorization header, so
	// the server checks the query string on upgrade. Left nil, the dial
	// goes out unauthenticated and the server refuses it.
	TokenSource func() string

	mu       sync.Mutex
	conn     *websocket.Conn
	handlers map[string]map[int]Handler
	order    map[string][]int
	nextID   int
}

func New(url string) *Channel {
	return &Channel{
		url:      url,
		handlers: map[string]map[int]Handler{},
		order:    map[string][]int{},
	}
}

// Connect dials the server and starts the read loop. Calling Connect on
// a live channel is a no-op, so views may call it freely without
// spawning duplicate loops.
func (c *Channel) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return nil
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.dialURL(), nil)
	if err != nil {
		return err
	}
	c.conn = conn
	go c.readLoop(conn)
	return nil
}

func (c *Channel) dialURL() string {
	if c.TokenSource == nil {
		return c.url
	}
	token := c.TokenSource()
	if token == "" {
		return c.url
	}
	sep := "?"
	if strings.Contains(c.url, "?") {
		sep = "&"
	}
	return c.url + sep + "token=" + url.QueryEscape(token)
}

// On registers a handler for an event name.
func (c *Channel) On(event string, fn Handler) *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	if c.handlers[event] == nil {
		c.handlers[event] = map[int]Handler{}
	}
	c.handlers[event][id] = fn
	c.order[event] = append(c.order[event], id)
	return &Subscription{event: event, id: id}
}

// Off removes a subscription. The handler never fires again once Off
// returns.
func (c *Channel) Off(sub *Subscription) {
	if sub == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.handlers[sub.event], sub.id)
	ids := c.order[sub.event]
	for i, id := range ids {
		if id == sub.id {
			c.order[sub.event] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
}

// Close tears the connection down. A later Connect dials again.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *Channel) readLoop(conn *websocket.Conn) {
	for {
		var ev events.Event
		if err := conn.ReadJSON(&ev); err != nil {
			c.mu.Lock()
			if c.conn == conn {
				c.conn = nil
			}
			c.mu.Unlock()
			logger.Warn("realtime connection closed", map[string]interface{}{"error": err.Error()})
			return
		}
		c.dispatch(ev)
	}
}

func (c *Channel) dispatch(ev events.Event) {
	c.mu.Lock()
	fns := make([]Handler, 0, len(c.order[ev.Name]))
	for _, id := range c.order[ev.Name] {
		if fn, ok := c.handlers[ev.Name][id]; ok {
			fns = append(fns, fn)
		}
	}
	c.mu.Unlock()

	// handlers run on the read loop goroutine so arrival order is
	// preserved end to end.
	for _, fn := range fns {
		fn(ev)
	}
}
