package constants

// NSQ topics
const (
	// Payments service
	TopicTransactionCreated  = "transaction.created"
	TopicTransactionVerified = "transaction.verified"
	TopicPayoutDeferred      = "payouts.deferred"
)

// Webhook event types sent by the payment provider
const (
	EventChargeSuccess = "charge.success"
)
