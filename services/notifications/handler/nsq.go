package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/duespay/internal/pkg/constants"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	nsqpkg "github.com/piresc/duespay/internal/pkg/nsq"
	"github.com/piresc/duespay/services/notifications"
)

const maxAttempts = 5

// NotificationHandler consumes transaction events from NSQ
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
	cfg            *models.Config
	consumers      []*nsqpkg.Consumer
}

// NewNotificationHandler creates a new NSQ notification handler
func NewNotificationHandler(notificationUC notifications.NotificationUC, cfg *models.Config) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		cfg:            cfg,
	}
}

// InitNSQConsumers subscribes to every topic the notifier serves
func (h *NotificationHandler) InitNSQConsumers() error {
	subscriptions := map[string]nsqpkg.MessageHandler{
		constants.TopicTransactionCreated:  h.handleTransactionCreated,
		constants.TopicTransactionVerified: h.handleTransactionVerified,
		constants.TopicPayoutDeferred:      h.handlePayoutDeferred,
	}

	for topic, handle := range subscriptions {
		consumer, err := nsqpkg.NewConsumer(topic, h.cfg.NSQ.NotifierChannel, maxAttempts, handle)
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to create %s consumer: %w", topic, err)
		}
		h.consumers = append(h.consumers, consumer)

		if len(h.cfg.NSQ.LookupdAddress) > 0 {
			err = consumer.ConnectToLookupd(h.cfg.NSQ.LookupdAddress)
		} else {
			err = consumer.Connect(h.cfg.NSQ.NSQDAddress)
		}
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to connect %s consumer: %w", topic, err)
		}

		logger.Info("Subscribed to topic",
			logger.String("topic", topic),
			logger.String("channel", h.cfg.NSQ.NotifierChannel))
	}
	return nil
}

// Stop stops all consumers and waits for in-flight messages
func (h *NotificationHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}

func (h *NotificationHandler) handleTransactionCreated(msg []byte) error {
	var event models.TransactionEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Dropping malformed transaction.created message", logger.Err(err))
		return nil
	}

	ctx := messageContext()
	logger.InfoCtx(ctx, "Received transaction created event", logger.String("reference", event.ReferenceID))

	return h.notificationUC.NotifyTransactionCreated(ctx, event)
}

func (h *NotificationHandler) handleTransactionVerified(msg []byte) error {
	var event models.TransactionEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Dropping malformed transaction.verified message", logger.Err(err))
		return nil
	}

	ctx := messageContext()
	logger.InfoCtx(ctx, "Received transaction verified event", logger.String("reference", event.ReferenceID))

	if _, err := h.notificationUC.IssueReceipt(ctx, event); err != nil {
		if errors.Is(err, models.ErrValidation) {
			logger.WarnCtx(ctx, "Dropping unusable transaction.verified event", logger.Err(err))
			return nil
		}
		return err
	}
	return nil
}

func (h *NotificationHandler) handlePayoutDeferred(msg []byte) error {
	var payout models.DeferredPayout
	if err := nsqpkg.UnmarshalMessage(msg, &payout); err != nil {
		logger.Error("Dropping malformed payouts.deferred message", logger.Err(err))
		return nil
	}

	ctx := messageContext()
	logger.InfoCtx(ctx, "Received deferred payout event", logger.String("reference", payout.Reference))

	return h.notificationUC.NotifyDeferredPayout(ctx, payout)
}

// messageContext carries a fresh request ID for log correlation
func messageContext() context.Context {
	return logger.ContextWithRequestID(context.Background(), uuid.NewString())
}
