// Package products implements the catalog record service: CRUD, stock
// mutation, low-stock lookups and barcode assignment.
package products

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/repository"
	"github.com/agrodesk/agrodesk/internal/service/reporting"
)

// Service is the product record service.
type Service struct {
	repo   repository.ProductRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new service instance.
func NewService(repo repository.ProductRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List returns all products, newest first.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.List(ctx)
}

// Search returns products matching the query across name, category,
// description, barcode and supplier. A blank query returns the full list.
func (s *Service) Search(ctx context.Context, query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

// ListByCategory filters the catalog by category. An empty or "All" category
// returns everything.
func (s *Service) ListByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	if category == "" || category == "All" {
		return s.repo.List(ctx)
	}
	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", models.ErrValidation, category)
	}
	return s.repo.ListByCategory(ctx, category)
}

// LowStock returns products at or below their reorder threshold, lowest
// quantity first, capped to limit when limit is positive.
func (s *Service) LowStock(ctx context.Context, limit int) ([]models.Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return reporting.LowStockProducts(all, limit), nil
}

// Get loads one product.
func (s *Service) Get(ctx context.Context, id int) (models.Product, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new product, generating a barcode when none is supplied
// and applying the default reorder threshold.
func (s *Service) Create(ctx context.Context, product models.Product) (models.Product, error) {
	if err := validate(product); err != nil {
		return models.Product{}, err
	}

	if product.MinStockLevel <= 0 {
		product.MinStockLevel = models.DefaultMinStockLevel
	}
	if product.Barcode == "" {
		product.Barcode = generateBarcode()
	}
	product.CreatedOn = s.now()

	return s.repo.Create(ctx, product)
}

// Update replaces the stored record. Callers must supply the complete
// desired entity to avoid field loss.
func (s *Service) Update(ctx context.Context, id int, product models.Product) (models.Product, error) {
	if err := validate(product); err != nil {
		return models.Product{}, err
	}
	product.ID = id
	return s.repo.Replace(ctx, product)
}

// Delete removes one product.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// UpdateStock sets the remaining quantity of one product.
func (s *Service) UpdateStock(ctx context.Context, id int, quantity int) (models.Product, error) {
	if quantity < 0 {
		return models.Product{}, fmt.Errorf("%w: stock quantity must not be negative", models.ErrValidation)
	}

	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	product.StockQuantity = quantity
	return s.repo.Replace(ctx, product)
}

// generateBarcode produces a random 12-digit numeric code.
func generateBarcode() string {
	return strconv.FormatInt(100000000000+rand.Int64N(900000000000), 10)
}

func validate(product models.Product) error {
	switch {
	case strings.TrimSpace(product.Name) == "":
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	case !models.ValidCategory(product.Category):
		return fmt.Errorf("%w: unknown category %q", models.ErrValidation, product.Category)
	case product.Price < 0:
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	case product.StockQuantity < 0:
		return fmt.Errorf("%w: stock quantity must not be negative", models.ErrValidation)
	}
	return nil
}
