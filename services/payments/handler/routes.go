package handler

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/duespay/internal/pkg/constants"
	"github.com/piresc/duespay/internal/pkg/middleware"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/payments"
	httpHandler "github.com/piresc/duespay/services/payments/handler/http"
)

// Handler combines all HTTP handlers for the payments service
type Handler struct {
	payment *httpHandler.PaymentHandler
	webhook *httpHandler.WebhookHandler
	admin   *httpHandler.AdminHandler
	cfg     *models.Config
	redis   *redis.Client
}

// NewHandler creates a new combined handler. redisClient backs the public
// rate limiter and may be nil.
func NewHandler(paymentUC payments.PaymentUC, cfg *models.Config, redisClient *redis.Client) *Handler {
	return &Handler{
		payment: httpHandler.NewPaymentHandler(paymentUC),
		webhook: httpHandler.NewWebhookHandler(paymentUC),
		admin:   httpHandler.NewAdminHandler(paymentUC),
		cfg:     cfg,
		redis:   redisClient,
	}
}

// RegisterRoutes registers all payments HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	transactions := e.Group("/api/v1/transactions")

	// Provider notifications are authenticated by signature, not by token
	transactions.POST("/webhook", h.webhook.HandleKorapay)

	public := transactions.Group("/payment", middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redis,
		Key:         constants.KeyRateLimitPayments,
		Limit:       h.cfg.Server.RateLimit,
		Period:      h.cfg.Server.RateWindow,
	}))
	public.POST("/initiate", h.payment.InitiateBankTransfer)
	public.POST("/checkout", h.payment.InitiateCheckout)
	public.GET("/status/:reference", h.payment.GetPaymentStatus)

	admin := e.Group("/api/v1/transactions", middleware.JWTAuthMiddleware(h.cfg.JWT))
	admin.GET("", h.admin.ListTransactions)
	admin.POST("/:reference/payout", h.admin.ManualPayout)
}
