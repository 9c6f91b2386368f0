// Package bus wraps the NATS connection used as the mesh pub/sub bus.
// Topics use the slash-delimited A2A taxonomy and are mapped to dotted
// subjects at this boundary; A2A user-properties travel as message headers.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
)

// User-property header names carried on every A2A request.
const (
	HeaderReplyTo     = "replyTo"
	HeaderStatusTopic = "a2aStatusTopic"
	HeaderClientID    = "clientId"
	HeaderUserID      = "userId"
)

// Message is one received bus message.
type Message struct {
	Topic   string
	Data    []byte
	Headers map[string]string
}

// Handler consumes received messages. Handlers run on the bus consumer
// goroutine; long-running work must be bounded so one message cannot stall
// the subscription.
type Handler func(msg *Message)

// Subscription is a handle to an active subscription.
type Subscription interface {
	Unsubscribe() error
}

// Client is the NATS-backed bus client.
type Client struct {
	conn *nats.Conn
}

// Connect establishes the bus connection with reconnection handling.
func Connect(cfg *config.BusConfig) (*Client, error) {
	opts := []nats.Option{
		nats.Name(cfg.ClientID),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				slog.Warn("Bus disconnected", "error", err)
			} else {
				slog.Info("Bus disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("Bus reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			if err := nc.LastError(); err != nil {
				slog.Error("Bus connection closed", "error", err)
			} else {
				slog.Info("Bus connection closed")
			}
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			subject := ""
			if sub != nil {
				subject = sub.Subject
			}
			slog.Error("Bus error", "subject", subject, "error", err)
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to bus at %s: %w", cfg.URL, err)
	}

	slog.Info("Connected to bus", "url", cfg.URL)
	return &Client{conn: conn}, nil
}

// Publish sends payload to a topic with the given headers.
func (c *Client) Publish(_ context.Context, topic string, payload []byte, headers map[string]string) error {
	msg := nats.NewMsg(a2a.ToSubject(topic))
	msg.Data = payload
	for k, v := range headers {
		msg.Header.Set(k, v)
	}

	if err := c.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe delivers every message on topic to handler.
func (c *Client) Subscribe(topic string, handler Handler) (Subscription, error) {
	sub, err := c.conn.Subscribe(a2a.ToSubject(topic), c.msgHandler(topic, handler))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	slog.Debug("Subscribed", "topic", topic)
	return sub, nil
}

// QueueSubscribe load-balances messages on topic across members of queue.
func (c *Client) QueueSubscribe(topic, queue string, handler Handler) (Subscription, error) {
	sub, err := c.conn.QueueSubscribe(a2a.ToSubject(topic), queue, c.msgHandler(topic, handler))
	if err != nil {
		return nil, fmt.Errorf("failed to queue subscribe to %s: %w", topic, err)
	}
	slog.Debug("Queue subscribed", "topic", topic, "queue", queue)
	return sub, nil
}

func (c *Client) msgHandler(topic string, handler Handler) nats.MsgHandler {
	return func(m *nats.Msg) {
		headers := make(map[string]string, len(m.Header))
		for k := range m.Header {
			headers[k] = m.Header.Get(k)
		}
		handler(&Message{
			Topic:   topic,
			Data:    m.Data,
			Headers: headers,
		})
	}
}

// Close drains and closes the connection.
func (c *Client) Close() {
	if err := c.conn.Drain(); err != nil {
		slog.Warn("Bus drain failed, closing hard", "error", err)
		c.conn.Close()
	}
}
