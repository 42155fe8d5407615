package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

var supplierSearchFields = []string{"name", "contact", "address"}

// SupplierRepository persists vendors in the suppliers collection.
type SupplierRepository struct {
	repo *Repository
	coll *mongo.Collection
}

// NewSupplierRepository builds the supplier store on a shared connection.
func NewSupplierRepository(repo *Repository) *SupplierRepository {
	return &SupplierRepository{repo: repo, coll: repo.db.Collection("suppliers")}
}

// List returns all suppliers, newest created first.
func (r *SupplierRepository) List(ctx context.Context) ([]models.Supplier, error) {
	return r.find(ctx, bson.M{})
}

// Search matches the query case-insensitively against the supplier text fields.
func (r *SupplierRepository) Search(ctx context.Context, query string) ([]models.Supplier, error) {
	return r.find(ctx, containsFilter(supplierSearchFields, query))
}

// Get loads one supplier by id.
func (r *SupplierRepository) Get(ctx context.Context, id int) (models.Supplier, error) {
	var supplier models.Supplier
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&supplier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Supplier{}, fmt.Errorf("supplier %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Supplier{}, fmt.Errorf("get supplier %d: %w", id, err)
	}
	return supplier, nil
}

// Create assigns a new id and inserts the record.
func (r *SupplierRepository) Create(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	id, err := r.repo.nextID(ctx, "suppliers")
	if err != nil {
		return models.Supplier{}, err
	}
	supplier.ID = id

	if _, err := r.coll.InsertOne(ctx, supplier); err != nil {
		return models.Supplier{}, fmt.Errorf("insert supplier: %w", err)
	}
	return supplier, nil
}

// Replace swaps the stored record for the supplied one.
func (r *SupplierRepository) Replace(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": supplier.ID}, supplier)
	if err != nil {
		return models.Supplier{}, fmt.Errorf("replace supplier %d: %w", supplier.ID, err)
	}
	if result.MatchedCount == 0 {
		return models.Supplier{}, fmt.Errorf("supplier %d: %w", supplier.ID, models.ErrNotFound)
	}
	return supplier, nil
}

// Delete removes one supplier by id.
func (r *SupplierRepository) Delete(ctx context.Context, id int) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("supplier %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *SupplierRepository) find(ctx context.Context, filter bson.M) ([]models.Supplier, error) {
	cursor, err := r.coll.Find(ctx, filter, newestFirst("created_on"))
	if err != nil {
		return nil, fmt.Errorf("find suppliers: %w", err)
	}
	defer cursor.Close(ctx)

	suppliers := []models.Supplier{}
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, fmt.Errorf("decode suppliers: %w", err)
	}
	return suppliers, nil
}
