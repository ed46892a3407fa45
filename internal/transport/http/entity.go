package httpt

import "github.com/YDahdah/Nectar/internal/validation"

type (
	ErrorResponse struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}

	ValidationErrorResponse struct {
		Success bool                    `json:"success"`
		Error   string                  `json:"error"`
		Errors  []validation.FieldError `json:"errors"`
	}

	NotificationStatus struct {
		WhatsApp       bool   `json:"whatsapp"`
		WhatsAppMethod string `json:"whatsappMethod"`
		Email          bool   `json:"email"`
		CustomerEmail  bool   `json:"customerEmail"`
	}

	CheckoutResponse struct {
		Success       bool               `json:"success"`
		Message       string             `json:"message"`
		OrderID       string             `json:"orderId"`
		Notifications NotificationStatus `json:"notifications"`
	}

	MessageResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}

	ProductListResponse struct {
		Success  bool           `json:"success"`
		Products []any          `json:"products"`
		Total    int            `json:"total"`
		Page     int            `json:"page"`
		Limit    int            `json:"limit"`
		Filters  ProductFilters `json:"filters"`
	}

	ProductFilters struct {
		Gender *string `json:"gender"`
		Brand  *string `json:"brand"`
	}
)
