package notify

import (
	"context"
	"sync"

	"github.com/printshophq/printshop-admin/internal/console/realtime"
	"github.com/printshophq/printshop-admin/internal/events"
)

// UnreadSource supplies the authoritative unread total. The gateway
// client satisfies this.
type UnreadSource interface {
	UnreadNotificationCount(ctx context.Context) (int, error)
}

// EventBus is the slice of the realtime channel the counter needs.
type EventBus interface {
	On(event string, fn realtime.Handler) *realtime.Subscription
	Off(sub *realtime.Subscription)
}

// Counter tracks the unread notification badge. Each view that shows
// the badge owns its own Counter: Start pulls the server baseline, then
// every order_created event bumps the count by one until Stop.
type Counter struct {
	source UnreadSource
	bus    EventBus

	mu    sync.Mutex
	count int
	sub   *realtime.Subscription
}

func NewCounter(source UnreadSource, bus EventBus) *Counter {
	return &Counter{source: source, bus: bus}
}

// Start fetches the baseline and subscribes to order_created. Calling
// Start again refreshes the baseline without adding a second
// subscription.
func (c *Counter) Start(ctx context.Context) error {
	baseline, err := c.source.UnreadNotificationCount(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = baseline
	if c.sub == nil {
		c.sub = c.bus.On(events.OrderCreated, func(events.Event) {
			c.mu.Lock()
			c.count++
			c.mu.Unlock()
		})
	}
	return nil
}

// Stop unsubscribes; the count freezes at its last value.
func (c *Counter) Stop() {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.mu.Unlock()
	if sub != nil {
		c.bus.Off(sub)
	}
}

func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
