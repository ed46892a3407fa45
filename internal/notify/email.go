package notify

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/YDahdah/Nectar/internal/config"
	"github.com/YDahdah/Nectar/internal/entity"

	mail "github.com/wneessen/go-mail"
)

type (
	// Mailer is the SMTP delivery seam. The concrete transport is an
	// external collaborator; the notifier only composes messages.
	Mailer interface {
		Send(ctx context.Context, to, subject, htmlBody string) error
		SendText(ctx context.Context, to, subject, textBody string) error
	}

	SMTPMailer struct {
		client   *mail.Client
		from     string
		shopName string
	}

	// EmailNotifier renders and sends the owner order email and the
	// customer confirmation email.
	EmailNotifier struct {
		mailer     Mailer
		orderEmail string
	}
)

var _ Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg *config.SMTP, shopName string) (*SMTPMailer, error) {
	const op = "notify.NewSMTPMailer"

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: create client: %w", op, err)
	}

	return &SMTPMailer{
		client:   client,
		from:     cfg.User,
		shopName: shopName,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	const op = "notify.SMTPMailer.Send"
	return m.send(ctx, op, to, subject, mail.TypeTextHTML, htmlBody)
}

func (m *SMTPMailer) SendText(ctx context.Context, to, subject, textBody string) error {
	const op = "notify.SMTPMailer.SendText"
	return m.send(ctx, op, to, subject, mail.TypeTextPlain, textBody)
}

func (m *SMTPMailer) send(
	ctx context.Context,
	op, to, subject string,
	contentType mail.ContentType,
	body string,
) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.shopName, m.from); err != nil {
		return fmt.Errorf("%s: set from: %w", op, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%s: set recipient: %w", op, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(contentType, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%s: send: %w", op, err)
	}
	return nil
}

type disabledMailer struct{}

func (disabledMailer) Send(context.Context, string, string, string) error {
	return entity.ErrMailerDisabled
}

func (disabledMailer) SendText(context.Context, string, string, string) error {
	return entity.ErrMailerDisabled
}

// NewDisabledMailer is used when SMTP credentials are absent: every send
// reports a failure without ever dialing out.
func NewDisabledMailer() Mailer {
	return disabledMailer{}
}

var _ EmailSender = (*EmailNotifier)(nil)

func NewEmailNotifier(mailer Mailer, orderEmail string) *EmailNotifier {
	return &EmailNotifier{
		mailer:     mailer,
		orderEmail: orderEmail,
	}
}

// SendOrderEmail delivers the owner-facing order report.
func (n *EmailNotifier) SendOrderEmail(ctx context.Context, order *entity.Order) error {
	if n.orderEmail == "" {
		return entity.ErrMailerDisabled
	}

	subject := fmt.Sprintf("🛍️ New Order from %s - %s", order.Email, order.OrderID)
	body, err := renderOrderEmail(order, true)
	if err != nil {
		return fmt.Errorf("notify.EmailNotifier.SendOrderEmail: render: %w", err)
	}
	return n.mailer.Send(ctx, n.orderEmail, subject, body)
}

// SendConfirmationEmail delivers the customer-facing confirmation.
func (n *EmailNotifier) SendConfirmationEmail(ctx context.Context, order *entity.Order) error {
	subject := fmt.Sprintf("✨ Order Confirmation - %s", order.OrderID)
	body, err := renderOrderEmail(order, false)
	if err != nil {
		return fmt.Errorf("notify.EmailNotifier.SendConfirmationEmail: render: %w", err)
	}
	return n.mailer.Send(ctx, order.Email, subject, body)
}

var orderEmailTmpl = template.Must(template.New("order_email").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family:Arial,sans-serif;line-height:1.6;color:#333;max-width:600px;margin:0 auto;padding:20px;">
  <div style="background-color:#000;color:#fff;padding:20px;text-align:center;">
    <h1>{{if .OwnerCopy}}New Order Received{{else}}Thank you for your order, {{.Order.FirstName}}!{{end}}</h1>
  </div>
  <div style="background-color:#f9f9f9;padding:20px;border:1px solid #ddd;">
    <div style="margin-bottom:20px;padding:15px;background-color:#fff;border-left:4px solid #000;">
      <p><strong>Order ID:</strong> {{.Order.OrderID}}</p>
      <p><strong>Date:</strong> {{.Timestamp}}</p>
    </div>
    <div style="margin-bottom:20px;padding:15px;background-color:#fff;border-left:4px solid #000;">
      <h2>Delivery Address</h2>
      <p>{{.Order.FirstName}} {{.Order.LastName}}<br>
      {{.Order.Address}}<br>
      {{.Order.City}}, {{.Order.Caza}}<br>
      {{.Order.Country}}<br>
      Phone: {{.Order.Phone}}</p>
    </div>
    <div style="margin-bottom:20px;padding:15px;background-color:#fff;border-left:4px solid #000;">
      <h2>Order Items</h2>
      <table style="width:100%;border-collapse:collapse;">
        <tr><th align="left">Item</th><th align="left">Size</th><th align="left">Qty</th><th align="left">Price</th><th align="left">Subtotal</th></tr>
        {{range .Order.Items}}
        <tr>
          <td>{{.Name}}</td>
          <td>{{.Size}}</td>
          <td>{{.Quantity}}</td>
          <td>${{printf "%.2f" .Price}}</td>
          <td>${{printf "%.2f" .LineTotal}}</td>
        </tr>
        {{end}}
      </table>
    </div>
    <div style="margin-bottom:20px;padding:15px;background-color:#fff;border-left:4px solid #000;">
      <h2>Order Summary</h2>
      <p>Subtotal: ${{printf "%.2f" .Order.Subtotal}}<br>
      {{if gt .Order.ShippingCost 0.0}}Shipping: ${{printf "%.2f" .Order.ShippingCost}}<br>{{end}}
      <strong>Total: ${{printf "%.2f" .Order.TotalPrice}}</strong></p>
      <p>Payment: {{.PaymentMethod}}<br>
      Shipping: {{.Order.ShippingMethod}}</p>
    </div>
    {{if .OwnerCopy}}
    <p><strong>Action required:</strong> process this order.</p>
    {{else}}
    <p>We'll contact you soon to confirm your order. If you have any questions, just reply to this email.</p>
    {{end}}
  </div>
</body>
</html>`))

type emailItem struct {
	Name      string
	Size      string
	Quantity  int
	Price     float64
	LineTotal float64
}

type emailOrder struct {
	*entity.Order
	Items []emailItem
}

func renderOrderEmail(order *entity.Order, ownerCopy bool) (string, error) {
	items := make([]emailItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, emailItem{
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     item.Price,
			LineTotal: item.Price * float64(item.Quantity),
		})
	}

	data := struct {
		Order         emailOrder
		OwnerCopy     bool
		Timestamp     string
		PaymentMethod string
	}{
		Order:         emailOrder{Order: order, Items: items},
		OwnerCopy:     ownerCopy,
		Timestamp:     time.Now().Format("January 2, 2006 03:04 PM MST"),
		PaymentMethod: paymentMethodLabel(order.PaymentMethod),
	}

	var b strings.Builder
	if err := orderEmailTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
