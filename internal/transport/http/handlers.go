package httpt

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/YDahdah/Nectar/internal/entity"
	"github.com/YDahdah/Nectar/internal/validation"
	"github.com/YDahdah/Nectar/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	_checkoutTimeout  = 30 * time.Second
	_testEmailTimeout = 30 * time.Second

	_defaultProductLimit = 24
	_maxProductLimit     = 100
)

func (h *Handler) checkoutHandler(c *gin.Context) {
	const op = "transport.checkoutHandler"

	var raw validation.RawOrder
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.handleMalformedBody(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _checkoutTimeout)
	defer cancel()

	placed, fieldErrs, err := h.orders.PlaceOrder(ctx, &raw)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Success: false,
			Error:   "Validation failed",
			Errors:  fieldErrs,
		})
		return
	}

	n := placed.Notifications
	c.JSON(http.StatusCreated, CheckoutResponse{
		Success: true,
		Message: "Order placed successfully. You will receive a confirmation on WhatsApp and email shortly.",
		OrderID: placed.Order.OrderID,
		Notifications: NotificationStatus{
			WhatsApp:       n.Customer.Success,
			WhatsAppMethod: n.Customer.Method,
			Email:          n.OwnerEmail.Success,
			CustomerEmail:  n.CustomerEmail.Success,
		},
	})
}

// Order persistence was deliberately left out, so both lookup endpoints
// answer 503 instead of pretending an order store exists.
func (h *Handler) getOrderHandler(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Success: false,
		Error:   "Database service unavailable. Order lookup is not supported.",
	})
}

func (h *Handler) listOrdersHandler(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Success: false,
		Error:   "Database service unavailable. Order listing is not supported.",
	})
}

// The catalog lives with the storefront. The endpoint keeps the response
// shape the SPA expects so a real product source can slot in behind it.
func (h *Handler) productsHandler(c *gin.Context) {
	page := parseBoundedInt(c.Query("page"), 1, 1, math.MaxInt)
	limit := parseBoundedInt(c.Query("limit"), _defaultProductLimit, 1, _maxProductLimit)

	c.JSON(http.StatusOK, ProductListResponse{
		Success:  true,
		Products: []any{},
		Total:    0,
		Page:     page,
		Limit:    limit,
		Filters: ProductFilters{
			Gender: optionalQuery(c, "gender"),
			Brand:  optionalQuery(c, "brand"),
		},
	})
}

func (h *Handler) subscribeHandler(c *gin.Context) {
	const op = "transport.subscribeHandler"

	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.handleMalformedBody(c, op, err)
		return
	}

	added, err := h.newsletter.Subscribe(c.Request.Context(), body.Email)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	if !added {
		c.JSON(http.StatusOK, MessageResponse{
			Success: true,
			Message: "You are already subscribed.",
		})
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{
		Success: true,
		Message: "Thank you for subscribing!",
	})
}

// testEmailHandler sends the customer confirmation template for a canned
// order so the SMTP setup can be verified end to end.
func (h *Handler) testEmailHandler(c *gin.Context) {
	const op = "transport.testEmailHandler"

	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.handleMalformedBody(c, op, err)
		return
	}

	email, ok := validation.NormalizeEmail(body.Email)
	if !ok {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Success: false,
			Error:   "Validation failed",
			Errors: []validation.FieldError{
				{Field: "email", Message: "Please provide a valid email address"},
			},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _testEmailTimeout)
	defer cancel()

	log := h.log.Ctx(ctx)
	log.LogAttrs(ctx, logger.InfoLevel, "testing email delivery",
		logger.String("to", email),
	)

	order := testOrder(email)
	if err := h.email.SendConfirmationEmail(ctx, order); err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Test email sent successfully to %s", email),
	})
}

func (h *Handler) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) detailedHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"message":     "API is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Env,
	})
}

func (h *Handler) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Nectar API Server",
		"version":   h.cfg.App.Version,
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) apiInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Nectar API Server",
		"version": h.cfg.App.Version,
		"endpoints": gin.H{
			"health":     "/health",
			"orders":     "/api/orders",
			"products":   "/api/products",
			"newsletter": "/api/newsletter",
			"test":       "/api/test",
		},
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Env,
	})
}

func (h *Handler) notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Error:   fmt.Sprintf("Route %s not found", c.Request.URL.Path),
	})
}

// testOrder is the canned payload behind the email test endpoint.
func testOrder(email string) *entity.Order {
	return &entity.Order{
		OrderID:   fmt.Sprintf("TEST-%d", time.Now().UnixMilli()),
		FirstName: "Test",
		LastName:  "Customer",
		Email:     email,
		Phone:     "+9611234567",
		Address:   "123 Test Street",
		City:      "Beirut",
		Caza:      "Beirut",
		Country:   entity.DefaultCountry,
		Items: []entity.OrderItem{
			{Name: "Test Product", Size: "100ml", Quantity: 1, Price: 50.00},
		},
		Subtotal:       50.00,
		ShippingCost:   5.00,
		TotalPrice:     55.00,
		PaymentMethod:  entity.DefaultPaymentMethod,
		ShippingMethod: entity.DefaultShippingMethod,
	}
}

func parseBoundedInt(raw string, def, min, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

func optionalQuery(c *gin.Context, name string) *string {
	if value := c.Query(name); value != "" {
		return &value
	}
	return nil
}
