package sales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/repository/memory"
)

func newTestService(now time.Time) (*Service, *memory.SaleStore) {
	store := memory.NewSaleStore()
	svc := NewService(store, nil)
	svc.now = func() time.Time { return now }
	return svc, store
}

func TestCreateAppliesDefaultsAndTotals(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	created, err := svc.Create(context.Background(), models.Sale{
		CustomerID:   1,
		CustomerName: "Alice",
		Items: []models.SaleItem{
			{ProductID: 1, ProductName: "Maize Seed", Quantity: 2, Price: 10},
		},
		Discount: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 20.0, created.Subtotal)
	assert.InDelta(t, 1.6, created.Tax, 1e-9)
	assert.InDelta(t, 20.6, created.Total, 1e-9)
	assert.Equal(t, models.DefaultPaymentMethod, created.PaymentMethod)
	assert.Equal(t, models.PaymentPaid, created.PaymentStatus)
	assert.Equal(t, models.OrderCompleted, created.Status)
	assert.Equal(t, now, created.OrderDate)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.Create(context.Background(), models.Sale{CustomerID: 1})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Create(context.Background(), models.Sale{
		CustomerID: 1,
		Items:      []models.SaleItem{{ProductID: 1, Quantity: 0, Price: 5}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Create(context.Background(), models.Sale{
		CustomerID: 0,
		Items:      []models.SaleItem{{ProductID: 1, Quantity: 1, Price: 5}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateRecomputesTotals(t *testing.T) {
	svc, _ := newTestService(time.Now())

	created, err := svc.Create(context.Background(), models.Sale{
		CustomerID: 1,
		Items:      []models.SaleItem{{ProductID: 1, Quantity: 1, Price: 10}},
	})
	require.NoError(t, err)

	created.Items = []models.SaleItem{{ProductID: 1, Quantity: 3, Price: 10, Total: 999}}
	updated, err := svc.Update(context.Background(), created.ID, created)

	require.NoError(t, err)
	assert.Equal(t, 30.0, updated.Items[0].Total)
	assert.Equal(t, 30.0, updated.Subtotal)
	assert.InDelta(t, 32.4, updated.Total, 1e-9)
}

func TestUpdatePaymentStatusPaidCompletesOrder(t *testing.T) {
	svc, _ := newTestService(time.Now())

	created, err := svc.Create(context.Background(), models.Sale{
		CustomerID:    1,
		Items:         []models.SaleItem{{ProductID: 1, Quantity: 1, Price: 10}},
		PaymentStatus: models.PaymentPending,
		Status:        models.OrderProcessing,
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePaymentStatus(context.Background(), created.ID, models.PaymentPaid)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, models.OrderCompleted, updated.Status)
}

func TestUpdatePaymentStatusRejectsUnknown(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.UpdatePaymentStatus(context.Background(), 1, "Refunded")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdatePaymentStatusMissingSale(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.UpdatePaymentStatus(context.Background(), 42, models.PaymentPaid)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTodaysSales(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	svc, store := newTestService(now)

	seed := func(orderDate time.Time) {
		_, err := store.Create(context.Background(), models.Sale{
			CustomerID: 1,
			Items:      []models.SaleItem{{ProductID: 1, Quantity: 1, Price: 10}},
			OrderDate:  orderDate,
		})
		require.NoError(t, err)
	}
	seed(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	seed(time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC))

	todays, err := svc.TodaysSales(context.Background())

	require.NoError(t, err)
	require.Len(t, todays, 1)
	assert.Equal(t, 1, todays[0].ID)
}

func TestListByDateRangeRejectsInvertedBounds(t *testing.T) {
	svc, _ := newTestService(time.Now())

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := svc.ListByDateRange(context.Background(), from, from.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestFlagOverdue(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	svc, store := newTestService(now)

	old, err := store.Create(context.Background(), models.Sale{
		CustomerID:    1,
		Items:         []models.SaleItem{{ProductID: 1, Quantity: 1, Price: 10}},
		PaymentStatus: models.PaymentPending,
		OrderDate:     now.AddDate(0, 0, -45),
	})
	require.NoError(t, err)
	recent, err := store.Create(context.Background(), models.Sale{
		CustomerID:    2,
		Items:         []models.SaleItem{{ProductID: 1, Quantity: 1, Price: 10}},
		PaymentStatus: models.PaymentPending,
		OrderDate:     now.AddDate(0, 0, -3),
	})
	require.NoError(t, err)

	flagged, err := svc.FlagOverdue(context.Background(), 30*24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 1, flagged)

	got, err := store.Get(context.Background(), old.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentOverdue, got.PaymentStatus)

	got, err = store.Get(context.Background(), recent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, got.PaymentStatus)
}
