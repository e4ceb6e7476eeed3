package events

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/printshophq/printshop-admin/internal/logger"
)

const exchangeName = "order_events_fanout"

// Rabbit publishes events to a fanout exchange and bridges deliveries back
// into the local hub, so consoles connected to any server instance see
// events produced by every instance.
type Rabbit struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

func NewRabbit(url string) (*Rabbit, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := channel.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	// exclusive auto-named queue: every instance gets its own copy
	q, err := channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := channel.QueueBind(q.Name, "", exchangeName, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	return &Rabbit{conn: conn, channel: channel, queue: q.Name}, nil
}

func (r *Rabbit) Publish(ev Event) {
	body, err := json.Marshal(ev)
	if err != nil {
		logger.Error("marshal event for broker", err, map[string]interface{}{"event": ev.Name})
		return
	}

	err = r.channel.PublishWithContext(context.Background(), exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logger.Error("publish event to broker", err, map[string]interface{}{"event": ev.Name})
	}
}

// Bridge consumes broker deliveries and forwards them to the hub until the
// connection closes.
func (r *Rabbit) Bridge(hub *Hub) error {
	deliveries, err := r.channel.Consume(r.queue, "", true, true, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for d := range deliveries {
			var ev Event
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				logger.Warn("drop malformed broker event", map[string]interface{}{"error": err.Error()})
				continue
			}
			hub.Publish(ev)
		}
	}()
	return nil
}

func (r *Rabbit) Close() {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		r.conn.Close()
	}
}
