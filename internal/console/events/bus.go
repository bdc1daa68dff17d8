// Package events broadcasts console state changes to in-process listeners
// over a watermill Go-channel pub/sub.
//
// Delivery is at-most-once for subscribers present at publish time and is
// not ordered across messages.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/placementdesk/internal/logging"
)

// Topic is the single topic all state changes are published on.
const Topic = "company.state.changed"

const outputBuffer = 64

// Change describes one applied console operation.
type Change struct {
	Operation   string    `json:"operation"`
	Collections []string  `json:"collections"`
	ReferenceID string    `json:"referenceId,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type Bus struct {
	pubSub *gochannel.GoChannel
	log    logging.Logger
}

func NewBus(log logging.Logger) *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: outputBuffer},
			watermill.NewStdLogger(false, false),
		),
		log: log.With("component", "events"),
	}
}

func (b *Bus) Publish(ctx context.Context, c Change) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode change: %w", err)
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	msg.SetContext(ctx)
	if err := b.pubSub.Publish(Topic, msg); err != nil {
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

// Subscribe returns a channel of decoded changes. The channel is closed
// when ctx is done or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context) (<-chan Change, error) {
	messages, err := b.pubSub.Subscribe(ctx, Topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	out := make(chan Change)
	go func() {
		defer close(out)
		for msg := range messages {
			var c Change
			if err := json.Unmarshal(msg.Payload, &c); err != nil {
				b.log.Warn(ctx, "dropping undecodable change", "uuid", msg.UUID, "error", err)
				msg.Ack()
				continue
			}
			msg.Ack()

			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}
