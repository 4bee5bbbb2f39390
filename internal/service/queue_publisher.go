// Package service publishes listing events to RabbitMQ.  Errors are logged
// and returned so callers can ignore failures without interrupting the
// request flow.
package service

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"

    "github.com/iliyamo/venue-booking/internal/queue"
)

// Publisher delivers listing events to downstream consumers.
type Publisher interface {
    Publish(ctx context.Context, ev queue.ListingEvent) error
}

// NopPublisher drops every event.  It is used when listing events are
// disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, queue.ListingEvent) error { return nil }

// AMQPPublisher publishes events as persistent JSON messages on a durable
// queue via the default exchange.  A connection is dialled per publish;
// writes are infrequent enough that pooling is not worth the reconnect
// bookkeeping.
type AMQPPublisher struct {
    URL    string
    Queue  string
    Logger *zap.Logger

    dial func(url string) (*amqp.Connection, error)
}

// dialTimeout caps the TCP connect and AMQP handshake.  amqp.Dial ignores
// the publish context, so the request deadline cannot do it.
const dialTimeout = 2 * time.Second

// NewAMQPPublisher returns a publisher for the given broker URL and queue.
func NewAMQPPublisher(url, queueName string, logger *zap.Logger) *AMQPPublisher {
    return &AMQPPublisher{URL: url, Queue: queueName, Logger: logger, dial: dialWithTimeout}
}

func dialWithTimeout(url string) (*amqp.Connection, error) {
    return amqp.DialConfig(url, amqp.Config{
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
        Dial:      amqp.DefaultDial(dialTimeout),
    })
}

func (p *AMQPPublisher) Publish(ctx context.Context, ev queue.ListingEvent) error {
    if err := p.publish(ctx, ev); err != nil {
        p.Logger.Warn("rabbitmq: publish listing event failed",
            zap.String("entity", ev.Entity),
            zap.String("action", ev.Action),
            zap.Uint64("id", ev.ID),
            zap.Error(err),
        )
        return err
    }
    return nil
}

func (p *AMQPPublisher) publish(ctx context.Context, ev queue.ListingEvent) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    body, err := json.Marshal(ev)
    if err != nil {
        return fmt.Errorf("marshal event: %w", err)
    }

    conn, err := p.dial(p.URL)
    if err != nil {
        return fmt.Errorf("dial: %w", err)
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    // Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        p.Queue, // name
        true,    // durable
        false,   // autoDelete
        false,   // exclusive
        false,   // noWait
        nil,     // args
    ); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx,
        "",      // default exchange
        p.Queue, // routing key = queue name
        false,   // mandatory
        false,   // immediate
        pub,
    ); err != nil {
        return fmt.Errorf("publish: %w", err)
    }
    return nil
}
