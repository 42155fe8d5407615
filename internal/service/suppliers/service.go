// Package suppliers implements the vendor record service: CRUD, reliability
// scoring and the delivery-date tracker.
package suppliers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/repository"
	"github.com/agrodesk/agrodesk/internal/service/reporting"
)

// Service is the supplier record service.
type Service struct {
	repo   repository.SupplierRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new service instance.
func NewService(repo repository.SupplierRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List returns all suppliers, newest first.
func (s *Service) List(ctx context.Context) ([]models.Supplier, error) {
	return s.repo.List(ctx)
}

// Search returns suppliers matching the query across name, contact and
// address. A blank query returns the full list.
func (s *Service) Search(ctx context.Context, query string) ([]models.Supplier, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

// Get loads one supplier.
func (s *Service) Get(ctx context.Context, id int) (models.Supplier, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new supplier with the starting reliability score and
// default payment terms.
func (s *Service) Create(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	if err := validate(supplier); err != nil {
		return models.Supplier{}, err
	}

	supplier.Reliability = models.DefaultReliability
	if supplier.PaymentTerms == "" {
		supplier.PaymentTerms = models.DefaultPaymentTerms
	}
	supplier.LastDelivery = nil
	supplier.CreatedOn = s.now()

	return s.repo.Create(ctx, supplier)
}

// Update replaces the stored record. Callers must supply the complete
// desired entity to avoid field loss.
func (s *Service) Update(ctx context.Context, id int, supplier models.Supplier) (models.Supplier, error) {
	if err := validate(supplier); err != nil {
		return models.Supplier{}, err
	}
	supplier.ID = id
	supplier.Reliability = models.ClampReliability(supplier.Reliability)
	return s.repo.Replace(ctx, supplier)
}

// Delete removes one supplier.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// UpdateReliabilityScore sets a supplier's reliability, clamped to 0..100.
func (s *Service) UpdateReliabilityScore(ctx context.Context, id int, score int) (models.Supplier, error) {
	supplier, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Supplier{}, err
	}

	supplier.Reliability = models.ClampReliability(score)
	return s.repo.Replace(ctx, supplier)
}

// UpdateDeliveryDate records the most recent delivery from a supplier.
func (s *Service) UpdateDeliveryDate(ctx context.Context, id int, delivered time.Time) (models.Supplier, error) {
	supplier, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Supplier{}, err
	}

	supplier.LastDelivery = &delivered
	return s.repo.Replace(ctx, supplier)
}

// ReliabilityReport buckets all suppliers by reliability band.
func (s *Service) ReliabilityReport(ctx context.Context) (models.SupplierReliabilityReport, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return models.SupplierReliabilityReport{}, err
	}
	return reporting.SupplierReliability(all), nil
}

func validate(supplier models.Supplier) error {
	switch {
	case strings.TrimSpace(supplier.Name) == "":
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	case strings.TrimSpace(supplier.Contact) == "":
		return fmt.Errorf("%w: contact is required", models.ErrValidation)
	}
	return nil
}
