package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

// SaleRepository persists orders in the sales collection.
type SaleRepository struct {
	repo *Repository
	coll *mongo.Collection
}

// NewSaleRepository builds the sale store on a shared connection.
func NewSaleRepository(repo *Repository) *SaleRepository {
	return &SaleRepository{repo: repo, coll: repo.db.Collection("sales")}
}

// List returns all sales, most recent order first.
func (r *SaleRepository) List(ctx context.Context) ([]models.Sale, error) {
	return r.find(ctx, bson.M{})
}

// ListByCustomer returns the sales placed by one customer.
func (r *SaleRepository) ListByCustomer(ctx context.Context, customerID int) ([]models.Sale, error) {
	return r.find(ctx, bson.M{"customer_id": customerID})
}

// ListByDateRange returns sales ordered within [from, to], bounds inclusive.
func (r *SaleRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Sale, error) {
	return r.find(ctx, bson.M{"order_date": bson.M{"$gte": from, "$lte": to}})
}

// Get loads one sale by id.
func (r *SaleRepository) Get(ctx context.Context, id int) (models.Sale, error) {
	var sale models.Sale
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sale)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Sale{}, fmt.Errorf("sale %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Sale{}, fmt.Errorf("get sale %d: %w", id, err)
	}
	return sale, nil
}

// Create assigns a new id and inserts the record.
func (r *SaleRepository) Create(ctx context.Context, sale models.Sale) (models.Sale, error) {
	id, err := r.repo.nextID(ctx, "sales")
	if err != nil {
		return models.Sale{}, err
	}
	sale.ID = id

	if _, err := r.coll.InsertOne(ctx, sale); err != nil {
		return models.Sale{}, fmt.Errorf("insert sale: %w", err)
	}
	return sale, nil
}

// Replace swaps the stored record for the supplied one.
func (r *SaleRepository) Replace(ctx context.Context, sale models.Sale) (models.Sale, error) {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": sale.ID}, sale)
	if err != nil {
		return models.Sale{}, fmt.Errorf("replace sale %d: %w", sale.ID, err)
	}
	if result.MatchedCount == 0 {
		return models.Sale{}, fmt.Errorf("sale %d: %w", sale.ID, models.ErrNotFound)
	}
	return sale, nil
}

// Delete removes one sale by id.
func (r *SaleRepository) Delete(ctx context.Context, id int) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete sale %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("sale %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *SaleRepository) find(ctx context.Context, filter bson.M) ([]models.Sale, error) {
	cursor, err := r.coll.Find(ctx, filter, newestFirst("order_date"))
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	defer cursor.Close(ctx)

	sales := []models.Sale{}
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return sales, nil
}
