package pubsub

import (
	"context"
	"log/slog"
	"time"

	"notifyd/internal/domain/service"

	"github.com/pkg/errors"
	gcpubsub "gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

const memoryAckDeadline = time.Minute

// ErrMalformedSignal is returned by Receive for messages that do not decode into a signal.
var ErrMalformedSignal = errors.New("malformed dispatch signal")

// MemoryBus is an in-process topic with a single subscription, shared by the
// memory publisher and the inline consumer.
type MemoryBus struct {
	topic        *gcpubsub.Topic
	subscription *gcpubsub.Subscription
}

// NewMemoryBus creates the in-process topic and its subscription.
func NewMemoryBus() *MemoryBus {
	topic := mempubsub.NewTopic()

	return &MemoryBus{
		topic:        topic,
		subscription: mempubsub.NewSubscription(topic, memoryAckDeadline),
	}
}

// Receive blocks until a signal arrives. The returned ack function must be called once the signal is handled.
func (b *MemoryBus) Receive(ctx context.Context) (*service.DispatchSignal, func(), error) {
	msg, err := b.subscription.Receive(ctx)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	signal, err := DecodeSignal(msg.Body, msg.Metadata)
	if err != nil {
		// Malformed messages are dropped.
		msg.Ack()

		return nil, nil, errors.Wrap(ErrMalformedSignal, err.Error())
	}

	return signal, msg.Ack, nil
}

// Shutdown flushes the topic and stops the subscription.
func (b *MemoryBus) Shutdown(ctx context.Context) error {
	topicErr := b.topic.Shutdown(ctx)
	subErr := b.subscription.Shutdown(ctx)
	if topicErr != nil {
		return errors.WithStack(topicErr)
	}

	return errors.WithStack(subErr)
}

// memoryPublisher sends dispatch signals to the in-process bus
type memoryPublisher struct {
	bus    *MemoryBus
	logger *slog.Logger
}

// NewMemoryPublisher creates a publisher on the in-process bus
func NewMemoryPublisher(bus *MemoryBus, logger *slog.Logger) service.EventPublisher {
	return &memoryPublisher{bus: bus, logger: logger}
}

// PublishDispatchSignal sends the signal to the in-process topic
func (p *memoryPublisher) PublishDispatchSignal(ctx context.Context, signal *service.DispatchSignal) error {
	data, err := EncodeSignal(signal)
	if err != nil {
		return err
	}

	if err := p.bus.topic.Send(ctx, &gcpubsub.Message{Body: data, Metadata: signalAttributes(signal)}); err != nil {
		return errors.Wrapf(err, "failed to publish signal for event %s", signal.EventID)
	}

	p.logger.Debug("[MemoryPubSub] Dispatch signal published", slog.String("event_id", signal.EventID))

	return nil
}

// Close is a no-op; the bus is shut down by its owner
func (p *memoryPublisher) Close() error {
	return nil
}
