package customers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/repository/memory"
	"github.com/agrodesk/agrodesk/pkg/clients/notify"
)

type fakeNotifier struct {
	emailErr error
	smsErr   error
	emails   int
	sms      int
}

func (f *fakeNotifier) SendWelcomeEmail(ctx context.Context, customer models.Customer) (*notify.DeliveryResult, error) {
	f.emails++
	if f.emailErr != nil {
		return nil, f.emailErr
	}
	return &notify.DeliveryResult{Success: true, Message: "welcome email queued"}, nil
}

func (f *fakeNotifier) SendWelcomeSMS(ctx context.Context, customer models.Customer) (*notify.DeliveryResult, error) {
	f.sms++
	if f.smsErr != nil {
		return nil, f.smsErr
	}
	return &notify.DeliveryResult{Success: true, Message: "welcome sms queued"}, nil
}

func validCustomer() models.Customer {
	return models.Customer{
		Name:    "Alice Mbaye",
		Phone:   "+221770000000",
		Email:   "alice@example.com",
		Address: "Thies",
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := memory.NewCustomerStore()
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, nil)
	svc.now = func() time.Time { return now }

	input := validCustomer()
	input.LoyaltyPoints = 500
	input.TotalPurchases = 999

	result, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 1, result.ID)
	assert.Zero(t, result.LoyaltyPoints)
	assert.Zero(t, result.TotalPurchases)
	assert.Empty(t, result.CommunicationLog)
	require.NotNil(t, result.LastVisit)
	assert.Equal(t, now, *result.LastVisit)

	assert.Equal(t, models.DeliverySent, result.Welcome.Email.Status)
	assert.Equal(t, models.DeliverySent, result.Welcome.SMS.Status)
	assert.Equal(t, 1, notifier.emails)
	assert.Equal(t, 1, notifier.sms)
}

func TestCreateSurvivesNotificationFailure(t *testing.T) {
	store := memory.NewCustomerStore()
	notifier := &fakeNotifier{emailErr: errors.New("gateway down")}
	svc := NewService(store, notifier, nil)

	result, err := svc.Create(context.Background(), validCustomer())

	require.NoError(t, err)
	assert.Equal(t, models.DeliveryFailed, result.Welcome.Email.Status)
	assert.Equal(t, models.DeliverySent, result.Welcome.SMS.Status)

	stored, err := store.Get(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Mbaye", stored.Name)
}

func TestCreateWithoutNotifierSkipsWelcome(t *testing.T) {
	svc := NewService(memory.NewCustomerStore(), nil, nil)

	result, err := svc.Create(context.Background(), validCustomer())

	require.NoError(t, err)
	assert.Equal(t, models.DeliverySkipped, result.Welcome.Email.Status)
	assert.Equal(t, models.DeliverySkipped, result.Welcome.SMS.Status)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(memory.NewCustomerStore(), nil, nil)

	c := validCustomer()
	c.Email = "  "
	_, err := svc.Create(context.Background(), c)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAddCommunicationPrependsAndRefreshesLastVisit(t *testing.T) {
	store := memory.NewCustomerStore()
	svc := NewService(store, nil, nil)

	created, err := svc.Create(context.Background(), validCustomer())
	require.NoError(t, err)

	first := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	svc.now = func() time.Time { return first }
	_, err = svc.AddCommunication(context.Background(), created.ID, models.CommunicationEntry{
		Type:  models.CommunicationCall,
		Notes: "asked about maize seed prices",
	})
	require.NoError(t, err)

	svc.now = func() time.Time { return second }
	updated, err := svc.AddCommunication(context.Background(), created.ID, models.CommunicationEntry{
		Type:  models.CommunicationVisit,
		Notes: "picked up fertilizer order",
	})
	require.NoError(t, err)

	require.Len(t, updated.CommunicationLog, 2)
	assert.Equal(t, models.CommunicationVisit, updated.CommunicationLog[0].Type)
	assert.Equal(t, second, updated.CommunicationLog[0].Date)
	assert.Equal(t, models.CommunicationCall, updated.CommunicationLog[1].Type)
	require.NotNil(t, updated.LastVisit)
	assert.Equal(t, second, *updated.LastVisit)
}

func TestAddCommunicationValidation(t *testing.T) {
	store := memory.NewCustomerStore()
	svc := NewService(store, nil, nil)

	created, err := svc.Create(context.Background(), validCustomer())
	require.NoError(t, err)

	_, err = svc.AddCommunication(context.Background(), created.ID, models.CommunicationEntry{Type: "fax", Notes: "x"})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.AddCommunication(context.Background(), created.ID, models.CommunicationEntry{Type: models.CommunicationCall})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSearchBlankQueryReturnsAll(t *testing.T) {
	store := memory.NewCustomerStore()
	svc := NewService(store, nil, nil)

	for _, name := range []string{"Alice", "Bob"} {
		c := validCustomer()
		c.Name = name
		_, err := svc.Create(context.Background(), c)
		require.NoError(t, err)
	}

	all, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	hits, err := svc.Search(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Bob", hits[0].Name)
}
