package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

var productSearchFields = []string{"name", "category", "description", "barcode", "supplier"}

// ProductRepository persists catalog items in the products collection.
type ProductRepository struct {
	repo *Repository
	coll *mongo.Collection
}

// NewProductRepository builds the product store on a shared connection.
func NewProductRepository(repo *Repository) *ProductRepository {
	return &ProductRepository{repo: repo, coll: repo.db.Collection("products")}
}

// List returns all products, newest created first.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

// Search matches the query case-insensitively against the product text fields.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	return r.find(ctx, containsFilter(productSearchFields, query))
}

// ListByCategory returns the products of one catalog category.
func (r *ProductRepository) ListByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	return r.find(ctx, bson.M{"category": category})
}

// Get loads one product by id.
func (r *ProductRepository) Get(ctx context.Context, id int) (models.Product, error) {
	var product models.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return product, nil
}

// Create assigns a new id and inserts the record.
func (r *ProductRepository) Create(ctx context.Context, product models.Product) (models.Product, error) {
	id, err := r.repo.nextID(ctx, "products")
	if err != nil {
		return models.Product{}, err
	}
	product.ID = id

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

// Replace swaps the stored record for the supplied one.
func (r *ProductRepository) Replace(ctx context.Context, product models.Product) (models.Product, error) {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return models.Product{}, fmt.Errorf("replace product %d: %w", product.ID, err)
	}
	if result.MatchedCount == 0 {
		return models.Product{}, fmt.Errorf("product %d: %w", product.ID, models.ErrNotFound)
	}
	return product, nil
}

// Delete removes one product by id.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.coll.Find(ctx, filter, newestFirst("created_on"))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
