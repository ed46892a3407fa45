package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/YDahdah/Nectar/internal/entity"
)

const _divider = "━━━━━━━━━━━━━━━━━━━━\n"

// FormatOrderMessage renders the WhatsApp-style order text. The owner copy
// leads with the full customer block and an action footer, the customer
// copy with a thank-you and the delivery address.
func FormatOrderMessage(order *entity.Order, ownerCopy bool, now time.Time) string {
	var b strings.Builder

	timestamp := now.Format("January 2, 2006 03:04 PM MST")

	if ownerCopy {
		b.WriteString("🛍️ *NEW ORDER RECEIVED*\n")
		b.WriteString(_divider)
		b.WriteString("\n")
		if order.OrderID != "" {
			fmt.Fprintf(&b, "📋 *Order ID:* %s\n", order.OrderID)
		}
		fmt.Fprintf(&b, "📅 *Date & Time:* %s\n\n", timestamp)

		b.WriteString("👤 *CUSTOMER INFORMATION*\n")
		b.WriteString(_divider)
		fmt.Fprintf(&b, "Name: %s %s\n", order.FirstName, order.LastName)
		fmt.Fprintf(&b, "Phone: %s\n", order.Phone)
		fmt.Fprintf(&b, "Address: %s\n", order.Address)
		fmt.Fprintf(&b, "City: %s\n", order.City)
		fmt.Fprintf(&b, "Caza: %s\n", order.Caza)
		fmt.Fprintf(&b, "Country: %s\n\n", order.Country)
	} else {
		b.WriteString("✅ *ORDER CONFIRMATION*\n")
		b.WriteString(_divider)
		b.WriteString("\n")
		fmt.Fprintf(&b, "Thank you for your order, %s!\n\n", order.FirstName)
		if order.OrderID != "" {
			fmt.Fprintf(&b, "📋 *Your Order ID:* %s\n", order.OrderID)
		}
		fmt.Fprintf(&b, "📅 *Order Date:* %s\n\n", timestamp)

		b.WriteString("📍 *DELIVERY ADDRESS*\n")
		b.WriteString(_divider)
		fmt.Fprintf(&b, "%s %s\n", order.FirstName, order.LastName)
		fmt.Fprintf(&b, "%s\n", order.Address)
		fmt.Fprintf(&b, "%s, %s\n", order.City, order.Caza)
		fmt.Fprintf(&b, "%s\n", order.Country)
		fmt.Fprintf(&b, "Phone: %s\n\n", order.Phone)
	}

	totalItems := order.TotalItems()
	plural := "s"
	if totalItems == 1 {
		plural = ""
	}
	fmt.Fprintf(&b, "📦 *ORDER ITEMS* (%d item%s)\n", totalItems, plural)
	b.WriteString(_divider)
	for i, item := range order.Items {
		itemTotal := item.Price * float64(item.Quantity)
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Size: %s\n", item.Size)
		fmt.Fprintf(&b, "   Quantity: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Unit Price: $%.2f\n", item.Price)
		fmt.Fprintf(&b, "   Subtotal: $%.2f\n", itemTotal)
		if item.ID != "" {
			fmt.Fprintf(&b, "   Product ID: %s\n", item.ID)
		}
		b.WriteString("\n")
	}

	b.WriteString("💰 *ORDER SUMMARY*\n")
	b.WriteString(_divider)
	fmt.Fprintf(&b, "Subtotal: $%.2f\n", order.Subtotal)
	if order.ShippingCost > 0 {
		fmt.Fprintf(&b, "Shipping Cost: $%.2f\n", order.ShippingCost)
	}
	fmt.Fprintf(&b, "*TOTAL: $%.2f*\n\n", order.TotalPrice)

	b.WriteString("🚚 *SHIPPING DETAILS*\n")
	b.WriteString(_divider)
	fmt.Fprintf(&b, "Method: %s\n\n", order.ShippingMethod)

	b.WriteString("💳 *PAYMENT DETAILS*\n")
	b.WriteString(_divider)
	fmt.Fprintf(&b, "Method: %s\n\n", paymentMethodLabel(order.PaymentMethod))

	b.WriteString(_divider)
	if ownerCopy {
		b.WriteString("Action Required: Process this order 📦\n")
	} else {
		b.WriteString("We'll contact you soon to confirm your order! 🙏\n")
		b.WriteString("If you have any questions, please contact us.\n")
	}

	return b.String()
}

func paymentMethodLabel(method string) string {
	if method == "cod" {
		return "Cash on Delivery (COD)"
	}
	return method
}
