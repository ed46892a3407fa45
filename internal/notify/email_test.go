package notify_test

import (
	"context"
	"strings"
	"testing"

	"github.com/YDahdah/Nectar/internal/entity"
	"github.com/YDahdah/Nectar/internal/notify"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

func (m *mockMailer) SendText(ctx context.Context, to, subject, textBody string) error {
	args := m.Called(ctx, to, subject, textBody)
	return args.Error(0)
}

func TestEmailNotifier_SendOrderEmail(t *testing.T) {
	t.Parallel()

	order := testOrder()

	mailer := &mockMailer{}
	mailer.On("Send",
		mock.Anything,
		"owner@nectar.shop",
		"🛍️ New Order from jane@example.com - ORD-1718000000000-042",
		mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "New Order Received") &&
				strings.Contains(body, "ORD-1718000000000-042") &&
				strings.Contains(body, "Black Oud") &&
				strings.Contains(body, "$18.98") &&
				strings.Contains(body, "Cash on Delivery (COD)")
		}),
	).Return(nil).Once()

	n := notify.NewEmailNotifier(mailer, "owner@nectar.shop")
	require.NoError(t, n.SendOrderEmail(context.Background(), order))
	mailer.AssertExpectations(t)
}

func TestEmailNotifier_SendConfirmationEmail(t *testing.T) {
	t.Parallel()

	order := testOrder()

	mailer := &mockMailer{}
	mailer.On("Send",
		mock.Anything,
		"jane@example.com",
		"✨ Order Confirmation - ORD-1718000000000-042",
		mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Thank you for your order, Jane!") &&
				strings.Contains(body, "123 Main Street, Apt 4")
		}),
	).Return(nil).Once()

	n := notify.NewEmailNotifier(mailer, "owner@nectar.shop")
	require.NoError(t, n.SendConfirmationEmail(context.Background(), order))
	mailer.AssertExpectations(t)
}

func TestEmailNotifier_OwnerEmailUnconfigured(t *testing.T) {
	t.Parallel()

	mailer := &mockMailer{}
	n := notify.NewEmailNotifier(mailer, "")

	err := n.SendOrderEmail(context.Background(), testOrder())
	require.ErrorIs(t, err, entity.ErrMailerDisabled)
	mailer.AssertNotCalled(t, "Send")
}

func TestDisabledMailer(t *testing.T) {
	t.Parallel()

	n := notify.NewEmailNotifier(notify.NewDisabledMailer(), "owner@nectar.shop")

	err := n.SendConfirmationEmail(context.Background(), testOrder())
	require.ErrorIs(t, err, entity.ErrMailerDisabled)
}
