// Package notify fans an accepted order out to its notification channels:
// console-logged WhatsApp messages for the customer and the shop owner, and
// the two order emails. Every channel runs in its own failure boundary;
// none of them can fail the order.
package notify

import (
	"context"
	"time"

	"github.com/YDahdah/Nectar/internal/entity"
	"github.com/YDahdah/Nectar/pkg/logger"
	"github.com/YDahdah/Nectar/pkg/metric"

	"golang.org/x/sync/errgroup"
)

const (
	ChannelWhatsApp      = "whatsapp"
	ChannelOwnerWhatsApp = "owner_whatsapp"
	ChannelOwnerEmail    = "owner_email"
	ChannelCustomerEmail = "customer_email"

	MethodConsole = "console"
	MethodSMTP    = "smtp"
)

type (
	// Status is one channel's delivery outcome.
	Status struct {
		Success bool
		Method  string
		Err     error
	}

	// Results collects the outcome of every channel for one order.
	Results struct {
		Customer      Status
		Owner         Status
		OwnerEmail    Status
		CustomerEmail Status
	}

	WhatsAppSender interface {
		SendOrderNotification(
			ctx context.Context,
			phone string,
			order *entity.Order,
			ownerCopy bool,
		) (method string, err error)
	}

	EmailSender interface {
		SendOrderEmail(ctx context.Context, order *entity.Order) error
		SendConfirmationEmail(ctx context.Context, order *entity.Order) error
	}

	Dispatcher struct {
		whatsapp   WhatsAppSender
		email      EmailSender
		ownerPhone string
		log        logger.Logger
		metrics    metric.Notification
	}
)

func NewDispatcher(
	whatsapp WhatsAppSender,
	email EmailSender,
	ownerPhone string,
	log logger.Logger,
	metrics metric.Notification,
) *Dispatcher {
	return &Dispatcher{
		whatsapp:   whatsapp,
		email:      email,
		ownerPhone: ownerPhone,
		log:        log,
		metrics:    metrics,
	}
}

// Dispatch runs all channels concurrently and waits for every outcome.
// Failures are logged and counted but never propagated: the order was
// already accepted when this is called.
func (d *Dispatcher) Dispatch(ctx context.Context, order *entity.Order) Results {
	var results Results

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		results.Customer = d.sendWhatsApp(gCtx, ChannelWhatsApp, order.Phone, order, false)
		return nil
	})

	g.Go(func() error {
		if d.ownerPhone == "" || d.ownerPhone == order.Phone {
			return nil
		}
		results.Owner = d.sendWhatsApp(gCtx, ChannelOwnerWhatsApp, d.ownerPhone, order, true)
		return nil
	})

	g.Go(func() error {
		results.OwnerEmail = d.sendEmail(gCtx, ChannelOwnerEmail, order, d.email.SendOrderEmail)
		return nil
	})

	g.Go(func() error {
		results.CustomerEmail = d.sendEmail(gCtx, ChannelCustomerEmail, order, d.email.SendConfirmationEmail)
		return nil
	})

	// tasks never return an error, Wait only synchronizes
	_ = g.Wait()

	return results
}

func (d *Dispatcher) sendWhatsApp(
	ctx context.Context,
	channel, phone string,
	order *entity.Order,
	ownerCopy bool,
) Status {
	start := time.Now()
	method, err := d.whatsapp.SendOrderNotification(ctx, phone, order, ownerCopy)
	d.observe(ctx, channel, order.OrderID, start, err)
	return Status{Success: err == nil, Method: method, Err: err}
}

func (d *Dispatcher) sendEmail(
	ctx context.Context,
	channel string,
	order *entity.Order,
	send func(context.Context, *entity.Order) error,
) Status {
	start := time.Now()
	err := send(ctx, order)
	d.observe(ctx, channel, order.OrderID, start, err)
	return Status{Success: err == nil, Method: MethodSMTP, Err: err}
}

func (d *Dispatcher) observe(
	ctx context.Context,
	channel, orderID string,
	start time.Time,
	err error,
) {
	duration := time.Since(start)
	d.metrics.ObserveDuration(channel, duration)

	if err != nil {
		d.metrics.Failed(channel)
		d.log.LogAttrs(ctx, logger.WarnLevel, "notification failed (non-critical)",
			logger.String("channel", channel),
			logger.String("order_id", orderID),
			logger.Any("error", err),
		)
		return
	}

	d.metrics.Sent(channel)
	d.log.LogAttrs(ctx, logger.InfoLevel, "notification sent",
		logger.String("channel", channel),
		logger.String("order_id", orderID),
		logger.String("duration", duration.String()),
	)
}
