package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/duespay/internal/pkg/constants"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	nsqpkg "github.com/piresc/duespay/internal/pkg/nsq"
	"github.com/piresc/duespay/services/payments"
)

// EventGW publishes transaction lifecycle events to NSQ
type EventGW struct {
	publisher nsqpkg.Publisher
}

// NewEventGW creates a new event gateway
func NewEventGW(publisher nsqpkg.Publisher) *EventGW {
	return &EventGW{publisher: publisher}
}

var (
	_ payments.EventGW         = (*EventGW)(nil)
	_ payments.BulkPayoutQueue = (*EventGW)(nil)
)

// PublishTransactionCreated announces a new pending transaction
func (g *EventGW) PublishTransactionCreated(ctx context.Context, event models.TransactionEvent) error {
	return g.publish(ctx, constants.TopicTransactionCreated, event.ReferenceID, event)
}

// PublishTransactionVerified announces a transaction settled by the provider
func (g *EventGW) PublishTransactionVerified(ctx context.Context, event models.TransactionEvent) error {
	return g.publish(ctx, constants.TopicTransactionVerified, event.ReferenceID, event)
}

// EnqueueDeferredPayout queues a hall payout for bulk settlement
func (g *EventGW) EnqueueDeferredPayout(ctx context.Context, payout models.DeferredPayout) error {
	return g.publish(ctx, constants.TopicPayoutDeferred, payout.TransactionReference, payout)
}

func (g *EventGW) publish(ctx context.Context, topic, reference string, message interface{}) error {
	if g.publisher == nil {
		return fmt.Errorf("no publisher configured for %s", topic)
	}
	if err := g.publisher.Publish(topic, message); err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}
	logger.DebugCtx(ctx, "Published event",
		logger.String("topic", topic),
		logger.String("reference", reference))
	return nil
}
