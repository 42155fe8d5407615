// Package repository declares the persistence contracts the services depend
// on. Implementations live in the mongodb (production) and memory (fixture)
// subpackages and are injected at construction.
package repository

import (
	"context"
	"time"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

// CustomerRepository stores customer records.
type CustomerRepository interface {
	List(ctx context.Context) ([]models.Customer, error)
	Search(ctx context.Context, query string) ([]models.Customer, error)
	Get(ctx context.Context, id int) (models.Customer, error)
	Create(ctx context.Context, customer models.Customer) (models.Customer, error)
	Replace(ctx context.Context, customer models.Customer) (models.Customer, error)
	Delete(ctx context.Context, id int) error
}

// ProductRepository stores catalog records.
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	ListByCategory(ctx context.Context, category models.Category) ([]models.Product, error)
	Get(ctx context.Context, id int) (models.Product, error)
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Replace(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id int) error
}

// SaleRepository stores orders.
type SaleRepository interface {
	List(ctx context.Context) ([]models.Sale, error)
	ListByCustomer(ctx context.Context, customerID int) ([]models.Sale, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Sale, error)
	Get(ctx context.Context, id int) (models.Sale, error)
	Create(ctx context.Context, sale models.Sale) (models.Sale, error)
	Replace(ctx context.Context, sale models.Sale) (models.Sale, error)
	Delete(ctx context.Context, id int) error
}

// SupplierRepository stores vendor records.
type SupplierRepository interface {
	List(ctx context.Context) ([]models.Supplier, error)
	Search(ctx context.Context, query string) ([]models.Supplier, error)
	Get(ctx context.Context, id int) (models.Supplier, error)
	Create(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
	Replace(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
	Delete(ctx context.Context, id int) error
}
