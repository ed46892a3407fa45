package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/YDahdah/Nectar/internal/entity"
	"github.com/YDahdah/Nectar/internal/repository"
	"github.com/YDahdah/Nectar/internal/service"
	"github.com/YDahdah/Nectar/pkg/logger"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTextMailer struct {
	mock.Mock
}

func (m *mockTextMailer) SendText(ctx context.Context, to, subject, textBody string) error {
	args := m.Called(ctx, to, subject, textBody)
	return args.Error(0)
}

func newNewsletter(mailer service.Mailer) (*service.NewsletterService, *repository.MemorySubscriberStore) {
	store := repository.NewMemorySubscriberStore()
	svc := service.NewNewsletterService(store, mailer, "owner@nectar.shop", "Nectar", logger.Nop())
	return svc, store
}

func TestSubscribe_NewAddress(t *testing.T) {
	t.Parallel()

	mailer := &mockTextMailer{}
	mailer.On("SendText",
		mock.Anything,
		"owner@nectar.shop",
		"[Nectar] New newsletter signup: jane@example.com",
		"New newsletter subscriber: jane@example.com\nTotal subscribers: 1",
	).Return(nil).Once()

	svc, store := newNewsletter(mailer)

	added, err := svc.Subscribe(context.Background(), "  Jane@Example.COM ")
	require.NoError(t, err)
	require.True(t, added)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)

	mailer.AssertExpectations(t)
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	t.Parallel()

	mailer := &mockTextMailer{}
	mailer.On("SendText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()

	svc, _ := newNewsletter(mailer)
	ctx := context.Background()

	added, err := svc.Subscribe(ctx, "jane@example.com")
	require.NoError(t, err)
	require.True(t, added)

	added, err = svc.Subscribe(ctx, "JANE@example.com")
	require.NoError(t, err)
	require.False(t, added)

	// only the first signup notifies the owner
	mailer.AssertNumberOfCalls(t, "SendText", 1)
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	t.Parallel()

	mailer := &mockTextMailer{}
	svc, store := newNewsletter(mailer)

	for _, email := range []string{"", "   ", "plainaddress", "missing@tld", "a b@example.com"} {
		_, err := svc.Subscribe(context.Background(), email)
		require.ErrorIs(t, err, entity.ErrInvalidEmail, "email %q", email)
	}

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
	mailer.AssertNotCalled(t, "SendText")
}

func TestSubscribe_OwnerEmailFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	mailer := &mockTextMailer{}
	mailer.On("SendText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down")).Once()

	svc, _ := newNewsletter(mailer)

	added, err := svc.Subscribe(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.True(t, added)
}
