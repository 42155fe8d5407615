package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

// SaleStore is the fixture-backed sale repository.
type SaleStore struct {
	mu      sync.RWMutex
	records map[int]models.Sale
	seq     int
}

// NewSaleStore returns an empty sale store.
func NewSaleStore() *SaleStore {
	return &SaleStore{records: make(map[int]models.Sale)}
}

// List returns all sales, most recent order first.
func (s *SaleStore) List(ctx context.Context) ([]models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]models.Sale, 0, len(s.records))
	for _, sale := range s.records {
		sales = append(sales, cloneSale(sale))
	}
	sort.Slice(sales, func(i, j int) bool {
		if !sales[i].OrderDate.Equal(sales[j].OrderDate) {
			return sales[i].OrderDate.After(sales[j].OrderDate)
		}
		return sales[i].ID > sales[j].ID
	})
	return sales, nil
}

// ListByCustomer returns the sales placed by one customer.
func (s *SaleStore) ListByCustomer(ctx context.Context, customerID int) ([]models.Sale, error) {
	all, _ := s.List(ctx)
	hits := all[:0]
	for _, sale := range all {
		if sale.CustomerID == customerID {
			hits = append(hits, sale)
		}
	}
	return hits, nil
}

// ListByDateRange returns sales ordered within [from, to], bounds inclusive.
func (s *SaleStore) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Sale, error) {
	all, _ := s.List(ctx)
	hits := all[:0]
	for _, sale := range all {
		if sale.OrderDate.Before(from) || sale.OrderDate.After(to) {
			continue
		}
		hits = append(hits, sale)
	}
	return hits, nil
}

// Get loads one sale by id.
func (s *SaleStore) Get(ctx context.Context, id int) (models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sale, ok := s.records[id]
	if !ok {
		return models.Sale{}, notFound("sale", id)
	}
	return cloneSale(sale), nil
}

// Create assigns the next id and stores the record.
func (s *SaleStore) Create(ctx context.Context, sale models.Sale) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	sale.ID = s.seq
	s.records[sale.ID] = cloneSale(sale)
	return sale, nil
}

// Replace swaps the stored record for the supplied one.
func (s *SaleStore) Replace(ctx context.Context, sale models.Sale) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[sale.ID]; !ok {
		return models.Sale{}, notFound("sale", sale.ID)
	}
	s.records[sale.ID] = cloneSale(sale)
	return sale, nil
}

// Delete removes one sale by id.
func (s *SaleStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return notFound("sale", id)
	}
	delete(s.records, id)
	return nil
}

func cloneSale(sale models.Sale) models.Sale {
	sale.Items = slices.Clone(sale.Items)
	return sale
}
