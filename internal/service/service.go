// Package service holds the business operations behind the HTTP API:
// order intake and newsletter signups.
package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/YDahdah/Nectar/internal/entity"
	"github.com/YDahdah/Nectar/internal/notify"
	"github.com/YDahdah/Nectar/internal/validation"
	"github.com/YDahdah/Nectar/pkg/logger"
	"github.com/YDahdah/Nectar/pkg/metric"
)

type (
	// Notifier fans an accepted order out to every notification channel.
	Notifier interface {
		Dispatch(ctx context.Context, order *entity.Order) notify.Results
	}

	SubscriberStore interface {
		Add(ctx context.Context, email string) (bool, error)
		Count(ctx context.Context) (int, error)
	}

	Mailer interface {
		SendText(ctx context.Context, to, subject, textBody string) error
	}

	// PlacedOrder is an accepted order together with the per-channel
	// notification outcomes.
	PlacedOrder struct {
		Order         *entity.Order
		Notifications notify.Results
	}

	OrderService struct {
		notifier Notifier
		logger   logger.Logger
		metrics  metric.Order
	}
)

func NewOrderService(
	notifier Notifier,
	log logger.Logger,
	metrics metric.Order,
) *OrderService {
	return &OrderService{
		notifier: notifier,
		logger:   log,
		metrics:  metrics,
	}
}

// PlaceOrder validates the raw checkout payload and, when it passes,
// assigns an order ID and dispatches notifications. A non-nil fieldErrs
// slice means the payload was rejected; the error return is reserved for
// infrastructure failures.
func (os *OrderService) PlaceOrder(
	ctx context.Context,
	raw *validation.RawOrder,
) (*PlacedOrder, []validation.FieldError, error) {
	log := os.logger.Ctx(ctx)

	result := validation.Validate(raw)
	if !result.Valid {
		os.metrics.Rejected("validation")
		log.LogAttrs(ctx, logger.WarnLevel, "order rejected",
			logger.Int("error_count", len(result.Errors)),
			logger.String("first_field", result.Errors[0].Field),
		)
		return nil, result.Errors, nil
	}

	order := result.Order
	order.OrderID = newOrderID()
	order.Status = entity.StatusPending

	log.LogAttrs(ctx, logger.InfoLevel, "order received",
		logger.String("order_id", order.OrderID),
		logger.String("customer", order.Email),
		logger.Int("items", order.TotalItems()),
		logger.Float64("total", order.TotalPrice),
	)

	results := os.notifier.Dispatch(ctx, order)

	os.metrics.Placed(order.PaymentMethod)
	os.metrics.ObserveTotal(order.TotalPrice)

	return &PlacedOrder{Order: order, Notifications: results}, nil, nil
}

// newOrderID builds the human-readable order reference: a millisecond
// timestamp plus a zero-padded random suffix to break same-millisecond ties.
func newOrderID() string {
	return fmt.Sprintf("ORD-%d-%03d", time.Now().UnixMilli(), rand.IntN(1000))
}
