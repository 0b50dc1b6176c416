package notifier

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"coworking-reservations/internal/pkg/config"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPNotifier publishes lifecycle events as persistent JSON messages to a
// durable queue on the default exchange.
type AMQPNotifier struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPNotifier(cfg config.AMQPConfig) (*AMQPNotifier, error) {
	n := &AMQPNotifier{url: cfg.URL, queue: cfg.Queue}
	if err := n.connect(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *AMQPNotifier) Notify(ctx context.Context, msg shared.Notification) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "marshal notification")
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(msg.Event),
		MessageId:    msg.ReservationID.String() + ":" + string(msg.Event),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.ch == nil || n.ch.IsClosed() {
		if err := n.connectLocked(); err != nil {
			return err
		}
	}
	if err := n.ch.PublishWithContext(ctx, "", n.queue, false, false, pub); err != nil {
		return errs.Wrapf(err, "publish %s", msg.Event)
	}
	return nil
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

func (n *AMQPNotifier) connect() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.connectLocked()
}

func (n *AMQPNotifier) connectLocked() error {
	if n.conn == nil || n.conn.IsClosed() {
		conn, err := amqp.Dial(n.url)
		if err != nil {
			return errs.Wrap(err, "dial amqp broker")
		}
		n.conn = conn
	}

	ch, err := n.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open amqp channel")
	}
	// durable so events survive broker restarts
	if _, err := ch.QueueDeclare(n.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return errs.Wrapf(err, "declare queue %s", n.queue)
	}
	n.ch = ch
	return nil
}
