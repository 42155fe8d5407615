// Package sales implements the order record service: CRUD with server-side
// total recomputation, payment-status transitions and date-range queries.
package sales

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/repository"
	"github.com/agrodesk/agrodesk/internal/service/reporting"
)

// Service is the sale record service.
type Service struct {
	repo   repository.SaleRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new service instance.
func NewService(repo repository.SaleRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List returns all sales, most recent order first.
func (s *Service) List(ctx context.Context) ([]models.Sale, error) {
	return s.repo.List(ctx)
}

// ListByCustomer returns the sales placed by one customer.
func (s *Service) ListByCustomer(ctx context.Context, customerID int) ([]models.Sale, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// ListByDateRange returns sales ordered within [from, to], bounds inclusive.
func (s *Service) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Sale, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end precedes range start", models.ErrValidation)
	}
	return s.repo.ListByDateRange(ctx, from, to)
}

// TodaysSales returns the sales ordered since local midnight, using the
// half-open tomorrow boundary.
func (s *Service) TodaysSales(ctx context.Context) ([]models.Sale, error) {
	from, to, err := reporting.ResolveRange(models.RangeToday, s.now())
	if err != nil {
		return nil, err
	}
	return s.repo.ListByDateRange(ctx, from, to)
}

// Get loads one sale.
func (s *Service) Get(ctx context.Context, id int) (models.Sale, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new sale. Line totals, subtotal, tax and grand total are
// recomputed server-side; cash-and-carry defaults apply when the payment
// fields are omitted.
func (s *Service) Create(ctx context.Context, sale models.Sale) (models.Sale, error) {
	if err := validate(sale); err != nil {
		return models.Sale{}, err
	}

	sale.Items, sale.Subtotal, sale.Tax, sale.Total = models.Totalize(sale.Items, sale.Discount)
	if sale.PaymentMethod == "" {
		sale.PaymentMethod = models.DefaultPaymentMethod
	}
	if sale.PaymentStatus == "" {
		sale.PaymentStatus = models.PaymentPaid
	}
	if sale.Status == "" {
		sale.Status = models.OrderCompleted
	}
	sale.OrderDate = s.now()

	return s.repo.Create(ctx, sale)
}

// Update replaces the stored record, recomputing all totals from the
// submitted items and discount.
func (s *Service) Update(ctx context.Context, id int, sale models.Sale) (models.Sale, error) {
	if err := validate(sale); err != nil {
		return models.Sale{}, err
	}

	sale.ID = id
	sale.Items, sale.Subtotal, sale.Tax, sale.Total = models.Totalize(sale.Items, sale.Discount)
	return s.repo.Replace(ctx, sale)
}

// Delete removes one sale.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// UpdatePaymentStatus transitions the payment state of one sale. Marking a
// sale Paid also completes the order regardless of its prior status.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id int, status models.PaymentStatus) (models.Sale, error) {
	if !models.ValidPaymentStatus(status) {
		return models.Sale{}, fmt.Errorf("%w: unknown payment status %q", models.ErrValidation, status)
	}

	sale, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Sale{}, err
	}

	sale.PaymentStatus = status
	if status == models.PaymentPaid {
		sale.Status = models.OrderCompleted
	}

	return s.repo.Replace(ctx, sale)
}

// FlagOverdue marks pending sales ordered before the cutoff as overdue and
// reports how many records changed.
func (s *Service) FlagOverdue(ctx context.Context, olderThan time.Duration) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-olderThan)
	flagged := 0
	for _, sale := range all {
		if sale.PaymentStatus != models.PaymentPending || !sale.OrderDate.Before(cutoff) {
			continue
		}
		sale.PaymentStatus = models.PaymentOverdue
		if _, err := s.repo.Replace(ctx, sale); err != nil {
			return flagged, fmt.Errorf("failed flagging sale %d overdue: %w", sale.ID, err)
		}
		flagged++
	}
	return flagged, nil
}

// Metrics summarizes all sales on record.
func (s *Service) Metrics(ctx context.Context) (models.SalesMetrics, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return models.SalesMetrics{}, err
	}
	return reporting.ComputeSalesMetrics(all), nil
}

func validate(sale models.Sale) error {
	switch {
	case sale.CustomerID <= 0:
		return fmt.Errorf("%w: a customer must be selected", models.ErrValidation)
	case len(sale.Items) == 0:
		return fmt.Errorf("%w: at least one item is required", models.ErrValidation)
	case sale.Discount < 0:
		return fmt.Errorf("%w: discount must not be negative", models.ErrValidation)
	}
	for _, item := range sale.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item quantity must be positive", models.ErrValidation)
		}
	}
	return nil
}
