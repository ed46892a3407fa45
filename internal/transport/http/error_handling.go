package httpt

import (
	"context"
	"errors"
	"net/http"

	"github.com/YDahdah/Nectar/internal/entity"
	"github.com/YDahdah/Nectar/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) handleServiceError(c *gin.Context, err error, op string) {
	ctx := c.Request.Context()
	log := h.log.Ctx(ctx)

	switch {
	case errors.Is(err, entity.ErrInvalidEmail):
		log.LogAttrs(ctx, logger.WarnLevel, op+": invalid email",
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Please provide a valid email address",
		})
	case errors.Is(err, entity.ErrMailerDisabled):
		log.LogAttrs(ctx, logger.WarnLevel, op+": email delivery not configured")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Email delivery is not configured",
		})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(ctx, logger.WarnLevel, op+": request timeout",
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{
			Success: false,
			Error:   "Request timed out",
		})
	default:
		log.LogAttrs(ctx, logger.ErrorLevel, op+" failed",
			logger.Any("error", err),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

func (h *Handler) handleMalformedBody(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()

	h.log.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel, op+": malformed request body",
		logger.Any("error", err),
		logger.String("client_ip", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   "Invalid request body",
	})
}
