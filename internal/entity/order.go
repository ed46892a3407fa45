package entity

const (
	StatusPending = "pending"

	DefaultCountry        = "Lebanon"
	DefaultPaymentMethod  = "Cash on Delivery"
	DefaultShippingMethod = "Express Delivery (2-3 Working Days)"
)

type OrderItem struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a fully validated and normalized checkout payload. It is never
// mutated after validation. OrderID and Status are filled in by the service
// once the order is accepted.
type Order struct {
	OrderID string `json:"orderId,omitempty"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Address string `json:"address"`
	City    string `json:"city"`
	Caza    string `json:"caza"`
	Country string `json:"country"`

	Items []OrderItem `json:"items"`

	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	TotalPrice   float64 `json:"totalPrice"`

	PaymentMethod  string `json:"paymentMethod"`
	ShippingMethod string `json:"shippingMethod"`
	Notes          string `json:"notes,omitempty"`

	Status string `json:"status,omitempty"`
}

func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
