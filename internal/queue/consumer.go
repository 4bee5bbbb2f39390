package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"
)

// StartListingConsumer connects to RabbitMQ, declares the listing queue
// (durable) and appends one line per event to out.  It reconnects with
// exponential backoff and returns only when ctx is cancelled.  Messages that
// cannot be decoded are rejected without requeue so the loop keeps moving.
func StartListingConsumer(ctx context.Context, url, queue string, out io.Writer, logger *zap.Logger) error {
    backoff := time.Second
    for {
        if err := ctx.Err(); err != nil {
            return err
        }
        conn, err := amqp.Dial(url)
        if err != nil {
            logger.Warn("listing-consumer: dial failed", zap.Error(err), zap.Duration("retry_in", backoff))
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = consumeLoop(ctx, conn, queue, out, logger)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        logger.Warn("listing-consumer: consume loop ended, reconnecting", zap.Error(err))
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, queue string, out io.Writer, logger *zap.Logger) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        logger.Warn("listing-consumer: set QoS failed", zap.Error(err))
    }
    if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := handleMessage(d.Body, out); err != nil {
                logger.Error("listing-consumer: handle message failed", zap.Error(err))
                _ = d.Nack(false, false)
                continue
            }
            _ = d.Ack(false)
        }
    }
}

func handleMessage(body []byte, out io.Writer) error {
    var ev ListingEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.Entity == "" || ev.Action == "" {
        return errors.New("event missing entity or action")
    }
    line := fmt.Sprintf("[%s] %s %s | id=%d | name=%q\n", ev.OccurredAt, ev.Entity, ev.Action, ev.ID, ev.Name)
    if _, err := io.WriteString(out, line); err != nil {
        return fmt.Errorf("write audit line: %w", err)
    }
    return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
