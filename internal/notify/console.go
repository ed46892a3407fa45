package notify

import (
	"context"
	"strings"
	"time"

	"github.com/YDahdah/Nectar/internal/entity"
	"github.com/YDahdah/Nectar/pkg/logger"
)

var _ WhatsAppSender = (*ConsoleWhatsApp)(nil)

// ConsoleWhatsApp is the "WhatsApp" channel: it logs the rendered message
// instead of delivering it. Kept as its own sender so a real provider can
// slot in behind the same interface later.
type ConsoleWhatsApp struct {
	log logger.Logger
}

func NewConsoleWhatsApp(log logger.Logger) *ConsoleWhatsApp {
	return &ConsoleWhatsApp{log: log}
}

func (c *ConsoleWhatsApp) SendOrderNotification(
	ctx context.Context,
	phone string,
	order *entity.Order,
	ownerCopy bool,
) (string, error) {
	message := FormatOrderMessage(order, ownerCopy, time.Now())

	c.log.LogAttrs(ctx, logger.InfoLevel, strings.Repeat("=", 50))
	c.log.LogAttrs(ctx, logger.InfoLevel, "📱 ORDER NOTIFICATION (Console Log)",
		logger.String("to", phone),
		logger.String("order_id", order.OrderID),
	)
	c.log.LogAttrs(ctx, logger.InfoLevel, message)
	c.log.LogAttrs(ctx, logger.InfoLevel, strings.Repeat("=", 50))

	return MethodConsole, nil
}
