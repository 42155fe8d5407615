package models

import "time"

// Category enumerates the product catalog categories.
type Category string

const (
	CategorySeeds       Category = "Seeds"
	CategoryFertilizers Category = "Fertilizers"
	CategoryPesticides  Category = "Pesticides"
	CategoryIrrigation  Category = "Irrigation"
	CategoryTools       Category = "Tools"
)

// ValidCategory reports whether c is a known catalog category.
func ValidCategory(c Category) bool {
	switch c {
	case CategorySeeds, CategoryFertilizers, CategoryPesticides, CategoryIrrigation, CategoryTools:
		return true
	}
	return false
}

// DefaultMinStockLevel is applied when a product is created without a reorder threshold.
const DefaultMinStockLevel = 10

// StockStatus describes the availability of a product.
type StockStatus string

const (
	StockStatusIn  StockStatus = "In Stock"
	StockStatusLow StockStatus = "Low Stock"
	StockStatusOut StockStatus = "Out of Stock"
)

// Product is one catalog item.
type Product struct {
	ID            int       `bson:"_id" json:"Id"`
	Name          string    `bson:"name" json:"name"`
	Category      Category  `bson:"category" json:"category"`
	Price         float64   `bson:"price" json:"price"`
	CostPrice     float64   `bson:"cost_price" json:"costPrice"`
	StockQuantity int       `bson:"stock_quantity" json:"stockQuantity"`
	MinStockLevel int       `bson:"min_stock_level" json:"minStockLevel"`
	Supplier      string    `bson:"supplier" json:"supplier"`
	Description   string    `bson:"description" json:"description"`
	Unit          string    `bson:"unit" json:"unit"`
	Barcode       string    `bson:"barcode" json:"barcode"`
	CreatedOn     time.Time `bson:"created_on" json:"-"`
}

// StockStatus derives the availability from the remaining quantity against
// the reorder threshold.
func (p Product) StockStatus() StockStatus {
	switch {
	case p.StockQuantity == 0:
		return StockStatusOut
	case p.StockQuantity <= p.MinStockLevel:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
