package memory

import (
	"context"
	"sync"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

// ProductStore is the fixture-backed product repository.
type ProductStore struct {
	mu      sync.RWMutex
	records map[int]models.Product
	seq     int
}

// NewProductStore returns an empty product store.
func NewProductStore() *ProductStore {
	return &ProductStore{records: make(map[int]models.Product)}
}

// List returns all products, newest created first.
func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.records))
	for _, p := range s.records {
		products = append(products, p)
	}
	sortNewestFirst(products, func(p models.Product) int { return p.ID })
	return products, nil
}

// Search matches the query against name, category, description, barcode and supplier.
func (s *ProductStore) Search(ctx context.Context, query string) ([]models.Product, error) {
	all, _ := s.List(ctx)
	hits := all[:0]
	for _, p := range all {
		if matches(query, p.Name, string(p.Category), p.Description, p.Barcode, p.Supplier) {
			hits = append(hits, p)
		}
	}
	return hits, nil
}

// ListByCategory returns the products of one catalog category.
func (s *ProductStore) ListByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	all, _ := s.List(ctx)
	hits := all[:0]
	for _, p := range all {
		if p.Category == category {
			hits = append(hits, p)
		}
	}
	return hits, nil
}

// Get loads one product by id.
func (s *ProductStore) Get(ctx context.Context, id int) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.records[id]
	if !ok {
		return models.Product{}, notFound("product", id)
	}
	return p, nil
}

// Create assigns the next id and stores the record.
func (s *ProductStore) Create(ctx context.Context, product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	product.ID = s.seq
	s.records[product.ID] = product
	return product, nil
}

// Replace swaps the stored record for the supplied one.
func (s *ProductStore) Replace(ctx context.Context, product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[product.ID]; !ok {
		return models.Product{}, notFound("product", product.ID)
	}
	s.records[product.ID] = product
	return product, nil
}

// Delete removes one product by id.
func (s *ProductStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return notFound("product", id)
	}
	delete(s.records, id)
	return nil
}
