// Package validation implements order intake validation: an explicit,
// table-driven schema over the raw checkout payload, phone normalization,
// and reconciliation of the submitted total against the recomputed one.
package validation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/YDahdah/Nectar/internal/entity"
)

// TotalTolerance is the absolute discrepancy allowed between the computed
// and the submitted order total, accommodating floating-point rounding.
const TotalTolerance = 0.01

type (
	// RawOrder is the checkout payload exactly as the client submitted it.
	// Optional fields are pointers so absence can be told apart from the
	// zero value; unknown JSON fields are dropped by decoding.
	RawOrder struct {
		FirstName      string    `json:"firstName"`
		LastName       string    `json:"lastName"`
		Email          string    `json:"email"`
		Phone          string    `json:"phone"`
		Address        string    `json:"address"`
		City           string    `json:"city"`
		Caza           string    `json:"caza"`
		Country        *string   `json:"country"`
		Items          []RawItem `json:"items"`
		ShippingCost   *float64  `json:"shippingCost"`
		TotalPrice     *float64  `json:"totalPrice"`
		PaymentMethod  *string   `json:"paymentMethod"`
		ShippingMethod *string   `json:"shippingMethod"`
		Notes          *string   `json:"notes"`
	}

	RawItem struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Size     string  `json:"size"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}

	FieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}

	// Result is the uniform validation outcome: either Valid with a
	// normalized Order, or a list of field errors. Order is nil on failure.
	Result struct {
		Valid  bool
		Errors []FieldError
		Order  *entity.Order
	}
)

// Validate runs the full intake pipeline over a raw payload: schema
// validation with every field error collected, then, only on schema
// success, total reconciliation against the normalized values. Pure
// function, no I/O.
func Validate(raw *RawOrder) Result {
	order := &entity.Order{}
	errs := checkSchema(raw, order)
	if len(errs) > 0 {
		return Result{Valid: false, Errors: errs}
	}

	// cannot fail here: the phone already passed the schema pattern
	if normalized, err := NormalizePhone(order.Phone); err == nil {
		order.Phone = normalized
	}

	subtotal := 0.0
	for _, item := range order.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	order.Subtotal = subtotal

	expected := subtotal + order.ShippingCost
	if math.Abs(expected-order.TotalPrice) > TotalTolerance {
		return Result{
			Valid: false,
			Errors: []FieldError{{
				Field: "totalPrice",
				Message: fmt.Sprintf("Total price mismatch. Calculated: $%.2f, Provided: $%.2f",
					expected, order.TotalPrice),
			}},
		}
	}

	return Result{Valid: true, Order: order}
}

func checkSchema(raw *RawOrder, order *entity.Order) []FieldError {
	var errs []FieldError

	for _, rule := range orderStringRules {
		if err := checkStringRule(rule, raw, order); err != nil {
			errs = append(errs, *err)
		}
	}

	errs = append(errs, checkEmail(raw, order)...)
	errs = append(errs, checkPhone(raw, order)...)
	errs = append(errs, checkItems(raw, order)...)
	errs = append(errs, checkPricing(raw, order)...)

	return errs
}

func checkStringRule(rule stringRule, raw *RawOrder, order *entity.Order) *FieldError {
	value, present := rule.get(raw)
	value = strings.TrimSpace(value)

	if !present || value == "" {
		if rule.optional {
			rule.set(order, rule.def)
			return nil
		}
		return &FieldError{Field: rule.field, Message: rule.field + " is required"}
	}

	if length := utf8.RuneCountInString(value); length < rule.min || (rule.max > 0 && length > rule.max) {
		return &FieldError{Field: rule.field, Message: lengthMessage(rule.field, rule.min, rule.max)}
	}

	if rule.pattern != nil && !rule.pattern.MatchString(value) {
		return &FieldError{Field: rule.field, Message: rule.patternMsg}
	}

	rule.set(order, value)
	return nil
}

func checkEmail(raw *RawOrder, order *entity.Order) []FieldError {
	email := strings.ToLower(strings.TrimSpace(raw.Email))
	if email == "" {
		return []FieldError{{Field: "email", Message: "email is required"}}
	}
	if utf8.RuneCountInString(email) > _maxEmailLen || !_emailRe.MatchString(email) {
		return []FieldError{{Field: "email", Message: "Please provide a valid email address"}}
	}
	order.Email = email
	return nil
}

func checkPhone(raw *RawOrder, order *entity.Order) []FieldError {
	phone := strings.TrimSpace(raw.Phone)
	if phone == "" {
		return []FieldError{{Field: "phone", Message: "phone is required"}}
	}
	if length := utf8.RuneCountInString(phone); length < _minPhoneLen || length > _maxPhoneLen {
		return []FieldError{{
			Field:   "phone",
			Message: lengthMessage("phone", _minPhoneLen, _maxPhoneLen),
		}}
	}
	if !_phoneRe.MatchString(phone) {
		return []FieldError{{Field: "phone", Message: "Please provide a valid phone number"}}
	}
	order.Phone = phone
	return nil
}

func checkItems(raw *RawOrder, order *entity.Order) []FieldError {
	if len(raw.Items) < _minItems {
		return []FieldError{{Field: "items", Message: "Order must contain at least one item"}}
	}
	if len(raw.Items) > _maxItems {
		return []FieldError{{Field: "items", Message: "Order cannot contain more than 50 items"}}
	}

	var errs []FieldError
	items := make([]entity.OrderItem, 0, len(raw.Items))

	for i, rawItem := range raw.Items {
		item := entity.OrderItem{
			ID:       strings.TrimSpace(rawItem.ID),
			Name:     strings.TrimSpace(rawItem.Name),
			Size:     strings.TrimSpace(rawItem.Size),
			Quantity: rawItem.Quantity,
			Price:    rawItem.Price,
		}

		if item.Name == "" || utf8.RuneCountInString(item.Name) > _maxItemNameLen {
			errs = append(errs, FieldError{
				Field:   itemField(i, "name"),
				Message: lengthMessage("name", 1, _maxItemNameLen),
			})
		}
		if item.Size == "" || utf8.RuneCountInString(item.Size) > _maxItemSizeLen {
			errs = append(errs, FieldError{
				Field:   itemField(i, "size"),
				Message: lengthMessage("size", 1, _maxItemSizeLen),
			})
		}
		if item.Quantity < _minQuantity || item.Quantity > _maxQuantity {
			errs = append(errs, FieldError{
				Field:   itemField(i, "quantity"),
				Message: fmt.Sprintf("quantity must be between %d and %d", _minQuantity, _maxQuantity),
			})
		}
		if item.Price <= 0 {
			errs = append(errs, FieldError{
				Field:   itemField(i, "price"),
				Message: "price must be a positive number",
			})
		} else if !hasAtMostTwoDecimals(item.Price) {
			errs = append(errs, FieldError{
				Field:   itemField(i, "price"),
				Message: "price must have at most 2 decimal places",
			})
		}

		items = append(items, item)
	}

	if len(errs) > 0 {
		return errs
	}

	order.Items = items
	return nil
}

func checkPricing(raw *RawOrder, order *entity.Order) []FieldError {
	var errs []FieldError

	shippingCost := 0.0
	if raw.ShippingCost != nil {
		shippingCost = *raw.ShippingCost
		switch {
		case shippingCost < 0:
			errs = append(errs, FieldError{Field: "shippingCost", Message: "shippingCost cannot be negative"})
		case !hasAtMostTwoDecimals(shippingCost):
			errs = append(errs, FieldError{Field: "shippingCost", Message: "shippingCost must have at most 2 decimal places"})
		}
	}
	order.ShippingCost = shippingCost

	if raw.TotalPrice == nil {
		errs = append(errs, FieldError{Field: "totalPrice", Message: "totalPrice is required"})
		return errs
	}

	totalPrice := *raw.TotalPrice
	switch {
	case totalPrice <= 0:
		errs = append(errs, FieldError{Field: "totalPrice", Message: "totalPrice must be a positive number"})
	case !hasAtMostTwoDecimals(totalPrice):
		errs = append(errs, FieldError{Field: "totalPrice", Message: "totalPrice must have at most 2 decimal places"})
	}
	order.TotalPrice = totalPrice

	return errs
}

func itemField(index int, name string) string {
	return fmt.Sprintf("items.%d.%s", index, name)
}

func lengthMessage(field string, min, max int) string {
	if min <= 1 {
		return fmt.Sprintf("%s must be between 1 and %d characters", field, max)
	}
	return fmt.Sprintf("%s must be between %d and %d characters", field, min, max)
}

func hasAtMostTwoDecimals(v float64) bool {
	scaled := v * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}
