// Package consumer drains the in-process signal bus and runs the dispatch pipeline inline.
package consumer

import (
	"context"
	"log/slog"
	"sync"

	"notifyd/internal/delivery"
	deliverycontext "notifyd/internal/delivery/context"
	"notifyd/internal/domain/lifecycle"
	"notifyd/internal/domain/service"
	"notifyd/internal/errors"
	"notifyd/internal/infra/pubsub"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SignalSource yields dispatch signals with an ack callback.
type SignalSource interface {
	Receive(ctx context.Context) (*service.DispatchSignal, func(), error)
}

type signalConsumer struct {
	source     SignalSource
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
	done    chan struct{}
}

// ConsumerParams holds dependencies for the consumer, injected by Fx.
type ConsumerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Bus        *pubsub.MemoryBus
	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// NewConsumer creates the inline consumer of the memory bus.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	c := newSignalConsumer(params.Bus, params.DispatchUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

func newSignalConsumer(source SignalSource, dispatchUC usecase.DispatchUsecase, logger *slog.Logger) *signalConsumer {
	return &signalConsumer{
		source:     source,
		dispatchUC: dispatchUC,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// Serve receives signals until stopped. Processing failures are left to the batch processor.
func (c *signalConsumer) Serve(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		cancel()

		return nil
	}
	c.cancel = cancel
	c.mu.Unlock()

	defer close(c.done)
	defer cancel()

	c.logger.Info("Starting dispatch signal consumer")

	for {
		signal, ack, err := c.source.Receive(runCtx)
		if runCtx.Err() != nil {
			return nil
		}
		if errors.Is(err, pubsub.ErrMalformedSignal) {
			c.logger.Warn("Dropping malformed dispatch signal", slog.Any("error", err))

			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to receive dispatch signal")
		}

		c.handle(runCtx, signal)
		ack()
	}
}

func (c *signalConsumer) handle(ctx context.Context, signal *service.DispatchSignal) {
	requestID := signal.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}
	logger := c.logger.With(slog.String("request_id", requestID), slog.String("event_id", signal.EventID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	eventID, err := uuid.Parse(signal.EventID)
	if err != nil {
		logger.Warn("Dropping dispatch signal with invalid event id", slog.Any("error", err))

		return
	}

	if err := c.dispatchUC.ProcessEventByID(ctx, eventID); err != nil {
		logger.Error("Failed to process event", slog.Any("error", err))

		return
	}

	logger.Debug("Event processed")
}

func (c *signalConsumer) stop(ctx context.Context) error {
	c.mu.Lock()
	cancel := c.cancel
	c.stopped = true
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}

	c.logger.Info("Stopping dispatch signal consumer")
	cancel()

	stopCtx, stopCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer stopCancel()

	select {
	case <-c.done:
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "consumer did not stop in time")
	}
}
