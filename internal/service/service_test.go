package service_test

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/YDahdah/Nectar/internal/entity"
	"github.com/YDahdah/Nectar/internal/notify"
	"github.com/YDahdah/Nectar/internal/service"
	"github.com/YDahdah/Nectar/internal/validation"
	"github.com/YDahdah/Nectar/pkg/logger"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Dispatch(ctx context.Context, order *entity.Order) notify.Results {
	args := m.Called(ctx, order)
	return args.Get(0).(notify.Results)
}

type nopOrderMetrics struct{}

func (nopOrderMetrics) Placed(string)        {}
func (nopOrderMetrics) Rejected(string)      {}
func (nopOrderMetrics) ObserveTotal(float64) {}

func ptr[T any](v T) *T { return &v }

func validRaw() *validation.RawOrder {
	return &validation.RawOrder{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "71234567",
		Address:   "123 Main Street, Apt 4",
		City:      "Beirut",
		Caza:      "Beirut",
		Items: []validation.RawItem{
			{ID: "black-oud", Name: "Black Oud", Size: "50ml", Quantity: 2, Price: 4.99},
			{Name: "Rose Essence", Size: "30ml", Quantity: 1, Price: 4.00},
		},
		ShippingCost: ptr(5.00),
		TotalPrice:   ptr(18.98),
	}
}

var orderIDRe = regexp.MustCompile(`^ORD-(\d{13,})-(\d{3})$`)

func TestPlaceOrder_AcceptsValidPayload(t *testing.T) {
	t.Parallel()

	allOK := notify.Results{
		Customer:      notify.Status{Success: true, Method: notify.MethodConsole},
		Owner:         notify.Status{Success: true, Method: notify.MethodConsole},
		OwnerEmail:    notify.Status{Success: true, Method: notify.MethodSMTP},
		CustomerEmail: notify.Status{Success: true, Method: notify.MethodSMTP},
	}

	notifier := &mockNotifier{}
	notifier.On("Dispatch", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(allOK).Once()

	svc := service.NewOrderService(notifier, logger.Nop(), nopOrderMetrics{})

	before := time.Now().UnixMilli()
	placed, fieldErrs, err := svc.PlaceOrder(context.Background(), validRaw())
	after := time.Now().UnixMilli()

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, placed)

	order := placed.Order
	require.Equal(t, entity.StatusPending, order.Status)
	require.Equal(t, "+96171234567", order.Phone)
	require.InDelta(t, 13.98, order.Subtotal, 1e-9)
	require.Equal(t, allOK, placed.Notifications)

	m := orderIDRe.FindStringSubmatch(order.OrderID)
	require.NotNil(t, m, "order id %q does not match ORD-<millis>-<nnn>", order.OrderID)

	millis, parseErr := strconv.ParseInt(m[1], 10, 64)
	require.NoError(t, parseErr)
	require.GreaterOrEqual(t, millis, before)
	require.LessOrEqual(t, millis, after)

	notifier.AssertExpectations(t)
}

func TestPlaceOrder_RejectsInvalidPayload(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.Email = "not-an-email"
	raw.FirstName = ""

	notifier := &mockNotifier{}
	svc := service.NewOrderService(notifier, logger.Nop(), nopOrderMetrics{})

	placed, fieldErrs, err := svc.PlaceOrder(context.Background(), raw)

	require.NoError(t, err)
	require.Nil(t, placed)
	require.Len(t, fieldErrs, 2)
	notifier.AssertNotCalled(t, "Dispatch")
}

func TestPlaceOrder_UniqueOrderIDs(t *testing.T) {
	t.Parallel()

	notifier := &mockNotifier{}
	notifier.On("Dispatch", mock.Anything, mock.Anything).Return(notify.Results{})

	svc := service.NewOrderService(notifier, logger.Nop(), nopOrderMetrics{})

	seen := make(map[string]struct{})
	for range 20 {
		placed, fieldErrs, err := svc.PlaceOrder(context.Background(), validRaw())
		require.NoError(t, err)
		require.Empty(t, fieldErrs)
		seen[placed.Order.OrderID] = struct{}{}
	}

	// same-millisecond suffix collisions are possible, just rare; allow a
	// few without failing the run
	require.GreaterOrEqual(t, len(seen), 15)
	for id := range seen {
		require.True(t, strings.HasPrefix(id, "ORD-"))
	}
}
