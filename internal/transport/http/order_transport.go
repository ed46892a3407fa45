package httpt

import (
	"github.com/YDahdah/Nectar/internal/config"
	"github.com/YDahdah/Nectar/internal/notify"
	"github.com/YDahdah/Nectar/internal/service"
	"github.com/YDahdah/Nectar/pkg/logger"
	"github.com/YDahdah/Nectar/pkg/metric"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orders     *service.OrderService
	newsletter *service.NewsletterService
	email      notify.EmailSender
	cfg        *config.Config
	log        logger.Logger
	metrics    metric.HTTP
	limiter    *RateLimiter
	router     *gin.Engine
}

func NewHandler(
	orders *service.OrderService,
	newsletter *service.NewsletterService,
	email notify.EmailSender,
	limiter *RateLimiter,
	cfg *config.Config,
	log logger.Logger,
	metrics metric.HTTP,
) *Handler {
	h := &Handler{
		orders:     orders,
		newsletter: newsletter,
		email:      email,
		cfg:        cfg,
		log:        log,
		metrics:    metrics,
		limiter:    limiter,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(h.corsMiddleware())
	router.Use(gin.Recovery())

	h.router = router

	h.setupRoutes()

	return h
}

func (h *Handler) Engine() *gin.Engine {
	return h.router
}
