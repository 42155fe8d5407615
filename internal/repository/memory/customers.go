package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

// CustomerStore is the fixture-backed customer repository.
type CustomerStore struct {
	mu      sync.RWMutex
	records map[int]models.Customer
	seq     int
}

// NewCustomerStore returns an empty customer store.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{records: make(map[int]models.Customer)}
}

// List returns all customers, newest created first.
func (s *CustomerStore) List(ctx context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]models.Customer, 0, len(s.records))
	for _, c := range s.records {
		customers = append(customers, cloneCustomer(c))
	}
	sortNewestFirst(customers, func(c models.Customer) int { return c.ID })
	return customers, nil
}

// Search matches the query against name, phone, email and address.
func (s *CustomerStore) Search(ctx context.Context, query string) ([]models.Customer, error) {
	all, _ := s.List(ctx)
	hits := all[:0]
	for _, c := range all {
		if matches(query, c.Name, c.Phone, c.Email, c.Address) {
			hits = append(hits, c)
		}
	}
	return hits, nil
}

// Get loads one customer by id.
func (s *CustomerStore) Get(ctx context.Context, id int) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.records[id]
	if !ok {
		return models.Customer{}, notFound("customer", id)
	}
	return cloneCustomer(c), nil
}

// Create assigns the next id and stores the record.
func (s *CustomerStore) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	customer.ID = s.seq
	s.records[customer.ID] = cloneCustomer(customer)
	return customer, nil
}

// Replace swaps the stored record for the supplied one.
func (s *CustomerStore) Replace(ctx context.Context, customer models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[customer.ID]; !ok {
		return models.Customer{}, notFound("customer", customer.ID)
	}
	s.records[customer.ID] = cloneCustomer(customer)
	return customer, nil
}

// Delete removes one customer by id.
func (s *CustomerStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return notFound("customer", id)
	}
	delete(s.records, id)
	return nil
}

func cloneCustomer(c models.Customer) models.Customer {
	c.CropTypes = slices.Clone(c.CropTypes)
	c.CommunicationLog = slices.Clone(c.CommunicationLog)
	return c
}
