package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

var customerSearchFields = []string{"name", "phone", "email", "address"}

// CustomerRepository persists customers in the customers collection.
type CustomerRepository struct {
	repo *Repository
	coll *mongo.Collection
}

// NewCustomerRepository builds the customer store on a shared connection.
func NewCustomerRepository(repo *Repository) *CustomerRepository {
	return &CustomerRepository{repo: repo, coll: repo.db.Collection("customers")}
}

// List returns all customers, newest created first.
func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	return r.find(ctx, bson.M{})
}

// Search matches the query case-insensitively against the customer text fields.
func (r *CustomerRepository) Search(ctx context.Context, query string) ([]models.Customer, error) {
	return r.find(ctx, containsFilter(customerSearchFields, query))
}

// Get loads one customer by id.
func (r *CustomerRepository) Get(ctx context.Context, id int) (models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Customer{}, fmt.Errorf("customer %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Customer{}, fmt.Errorf("get customer %d: %w", id, err)
	}
	return customer, nil
}

// Create assigns a new id and inserts the record.
func (r *CustomerRepository) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	id, err := r.repo.nextID(ctx, "customers")
	if err != nil {
		return models.Customer{}, err
	}
	customer.ID = id

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return models.Customer{}, fmt.Errorf("insert customer: %w", err)
	}
	return customer, nil
}

// Replace swaps the stored record for the supplied one. Full-record
// semantics: the caller must provide the complete desired entity.
func (r *CustomerRepository) Replace(ctx context.Context, customer models.Customer) (models.Customer, error) {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	if err != nil {
		return models.Customer{}, fmt.Errorf("replace customer %d: %w", customer.ID, err)
	}
	if result.MatchedCount == 0 {
		return models.Customer{}, fmt.Errorf("customer %d: %w", customer.ID, models.ErrNotFound)
	}
	return customer, nil
}

// Delete removes one customer by id.
func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("customer %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *CustomerRepository) find(ctx context.Context, filter bson.M) ([]models.Customer, error) {
	cursor, err := r.coll.Find(ctx, filter, newestFirst("created_on"))
	if err != nil {
		return nil, fmt.Errorf("find customers: %w", err)
	}
	defer cursor.Close(ctx)

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return customers, nil
}
