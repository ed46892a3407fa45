package service

import (
	"context"
	"fmt"

	"github.com/YDahdah/Nectar/internal/entity"
	"github.com/YDahdah/Nectar/internal/validation"
	"github.com/YDahdah/Nectar/pkg/logger"
)

type NewsletterService struct {
	store      SubscriberStore
	mailer     Mailer
	orderEmail string
	shopName   string
	logger     logger.Logger
}

func NewNewsletterService(
	store SubscriberStore,
	mailer Mailer,
	orderEmail string,
	shopName string,
	log logger.Logger,
) *NewsletterService {
	return &NewsletterService{
		store:      store,
		mailer:     mailer,
		orderEmail: orderEmail,
		shopName:   shopName,
		logger:     log,
	}
}

// Subscribe normalizes and records a newsletter signup. It reports whether
// the address was newly added; an already-subscribed address is not an
// error. The owner notification email is best effort.
func (ns *NewsletterService) Subscribe(ctx context.Context, rawEmail string) (bool, error) {
	const op = "service.newsletter.Subscribe"
	log := ns.logger.Ctx(ctx)

	email, ok := validation.NormalizeEmail(rawEmail)
	if !ok {
		return false, entity.ErrInvalidEmail
	}

	added, err := ns.store.Add(ctx, email)
	if err != nil {
		return false, fmt.Errorf("%s: add subscriber: %w", op, err)
	}
	if !added {
		return false, nil
	}

	count, err := ns.store.Count(ctx)
	if err != nil {
		// the signup itself succeeded, only the running total is missing
		log.LogAttrs(ctx, logger.WarnLevel, "subscriber count unavailable",
			logger.Any("error", err),
		)
		count = -1
	}

	log.LogAttrs(ctx, logger.InfoLevel, "newsletter signup",
		logger.String("email", email),
		logger.Int("total_subscribers", count),
	)

	ns.notifyOwner(ctx, email, count)

	return true, nil
}

func (ns *NewsletterService) notifyOwner(ctx context.Context, email string, count int) {
	if ns.orderEmail == "" {
		return
	}

	subject := fmt.Sprintf("[%s] New newsletter signup: %s", ns.shopName, email)
	body := fmt.Sprintf("New newsletter subscriber: %s\nTotal subscribers: %d", email, count)

	if err := ns.mailer.SendText(ctx, ns.orderEmail, subject, body); err != nil {
		ns.logger.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel,
			"could not send newsletter signup notification email",
			logger.Any("error", err),
		)
	}
}
