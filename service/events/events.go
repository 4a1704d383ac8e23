package events

import (
	"context"

	"lendbook/core"

	"github.com/asaskevich/EventBus"
	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/yiplee/structs"
)

// Handler receives one committed event
type Handler func(ctx context.Context, event core.Event)

// Bus core.EventSink over an in process event bus, one topic per event type
type Bus struct {
	bus EventBus.Bus
}

// New new event bus
func New() *Bus {
	return &Bus{bus: EventBus.New()}
}

// Publish deliver events in order to the subscribers of their types
func (b *Bus) Publish(ctx context.Context, events ...core.Event) {
	for _, event := range events {
		b.bus.Publish(event.EventType(), ctx, event)
	}
}

// Subscribe handle every event of topic
func (b *Bus) Subscribe(topic string, h Handler) error {
	return b.bus.Subscribe(topic, func(ctx context.Context, event core.Event) {
		h(ctx, event)
	})
}

// SubscribeAll handle every event type the core emits
func (b *Bus) SubscribeAll(h Handler) error {
	for _, topic := range core.EventTypes {
		if err := b.Subscribe(topic, h); err != nil {
			return err
		}
	}

	return nil
}

// Log writes every event to the context logger
func Log(ctx context.Context, event core.Event) {
	logger.FromContext(ctx).
		WithFields(logrus.Fields(structs.Map(event))).
		Infoln("event", event.EventType())
}
