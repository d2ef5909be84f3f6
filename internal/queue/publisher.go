package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const eventQueueName = "hazard.events"

// Publisher sends hazard events to the broker. A nil *Publisher is a
// no-op, so handlers can publish unconditionally and the wiring in main
// decides whether events are enabled.
type Publisher struct {
	url string
}

// NewPublisher returns a Publisher that dials the broker at url on each
// publish. Connections are short-lived on purpose: event volume is low and
// a dropped broker must never take requests down with it.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// Publish sends the event to the durable hazard.events queue. Errors are
// logged and returned; callers treat publishing as best-effort and ignore
// the result.
func (p *Publisher) Publish(ctx context.Context, event HazardEvent) error {
	if p == nil {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Declare is idempotent. Durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(eventQueueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", eventQueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
