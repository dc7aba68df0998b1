package handler

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/duespay/internal/pkg/middleware"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/banks"
	httpHandler "github.com/piresc/duespay/services/banks/handler/http"
)

// Handler combines all HTTP handlers for the bank directory
type Handler struct {
	bank  *httpHandler.BankHandler
	cfg   *models.Config
	redis *redis.Client
}

// NewHandler creates a new combined handler
func NewHandler(bankUC banks.BankUC, cfg *models.Config, redisClient *redis.Client) *Handler {
	return &Handler{
		bank:  httpHandler.NewBankHandler(bankUC),
		cfg:   cfg,
		redis: redisClient,
	}
}

// RegisterRoutes registers all bank directory HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	bankGroup := e.Group("/api/v1/banks")
	bankGroup.GET("", h.bank.ListBanks)

	// Each resolution costs an upstream call
	bankGroup.GET("/resolve", h.bank.ResolveAccount,
		middleware.IPRateLimiter(h.cfg.Server.RateLimit, h.cfg.Server.RateWindow, h.redis))
}
