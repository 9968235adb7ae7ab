// Package realtime pushes domain events to connected users over Redis
// pub/sub. Delivery is best-effort and unordered; consumers must tolerate
// events arriving out of order relative to their own fetches.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/logger"
)

// Publisher is the side the workflow services depend on.
type Publisher interface {
	Publish(ctx context.Context, userID domain.UserID, ev domain.Event) error
}

// Broker bridges domain events onto per-user Redis channels. A nil client
// disables the broker: publishes become no-ops so the workflow keeps working
// without Redis.
type Broker struct {
	rdb *redis.Client
}

func NewBroker(rdb *redis.Client) *Broker {
	return &Broker{rdb: rdb}
}

func channelFor(userID domain.UserID) string {
	return fmt.Sprintf("events:user:%s", userID)
}

func (b *Broker) Publish(ctx context.Context, userID domain.UserID, ev domain.Event) error {
	if b.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, channelFor(userID), payload).Err()
}

// Subscribe delivers events for userID to handler until the returned
// unsubscribe function is called or ctx is cancelled.
func (b *Broker) Subscribe(ctx context.Context, userID domain.UserID, handler func(domain.Event)) (func(), error) {
	if b.rdb == nil {
		return func() {}, nil
	}

	sub := b.rdb.Subscribe(ctx, channelFor(userID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	go func() {
		for msg := range sub.Channel() {
			var ev domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				logger.Warn("Dropping malformed realtime event", "channel", msg.Channel, "error", err)
				continue
			}
			handler(ev)
		}
	}()

	return func() { _ = sub.Close() }, nil
}
