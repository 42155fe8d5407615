package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

// SupplierStore is the fixture-backed supplier repository.
type SupplierStore struct {
	mu      sync.RWMutex
	records map[int]models.Supplier
	seq     int
}

// NewSupplierStore returns an empty supplier store.
func NewSupplierStore() *SupplierStore {
	return &SupplierStore{records: make(map[int]models.Supplier)}
}

// List returns all suppliers, newest created first.
func (s *SupplierStore) List(ctx context.Context) ([]models.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	suppliers := make([]models.Supplier, 0, len(s.records))
	for _, sup := range s.records {
		suppliers = append(suppliers, cloneSupplier(sup))
	}
	sortNewestFirst(suppliers, func(sup models.Supplier) int { return sup.ID })
	return suppliers, nil
}

// Search matches the query against name, contact and address.
func (s *SupplierStore) Search(ctx context.Context, query string) ([]models.Supplier, error) {
	all, _ := s.List(ctx)
	hits := all[:0]
	for _, sup := range all {
		if matches(query, sup.Name, sup.Contact, sup.Address) {
			hits = append(hits, sup)
		}
	}
	return hits, nil
}

// Get loads one supplier by id.
func (s *SupplierStore) Get(ctx context.Context, id int) (models.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sup, ok := s.records[id]
	if !ok {
		return models.Supplier{}, notFound("supplier", id)
	}
	return cloneSupplier(sup), nil
}

// Create assigns the next id and stores the record.
func (s *SupplierStore) Create(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	supplier.ID = s.seq
	s.records[supplier.ID] = cloneSupplier(supplier)
	return supplier, nil
}

// Replace swaps the stored record for the supplied one.
func (s *SupplierStore) Replace(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[supplier.ID]; !ok {
		return models.Supplier{}, notFound("supplier", supplier.ID)
	}
	s.records[supplier.ID] = cloneSupplier(supplier)
	return supplier, nil
}

// Delete removes one supplier by id.
func (s *SupplierStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return notFound("supplier", id)
	}
	delete(s.records, id)
	return nil
}

func cloneSupplier(sup models.Supplier) models.Supplier {
	sup.Products = slices.Clone(sup.Products)
	return sup
}
