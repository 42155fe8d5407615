package products

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/repository/memory"
)

var barcodePattern = regexp.MustCompile(`^[0-9]{12}$`)

func validProduct() models.Product {
	return models.Product{
		Name:          "Maize Seed 10kg",
		Category:      models.CategorySeeds,
		Price:         25,
		StockQuantity: 40,
	}
}

func TestCreateGeneratesBarcodeAndThreshold(t *testing.T) {
	svc := NewService(memory.NewProductStore(), nil)

	created, err := svc.Create(context.Background(), validProduct())

	require.NoError(t, err)
	assert.Regexp(t, barcodePattern, created.Barcode)
	assert.Equal(t, models.DefaultMinStockLevel, created.MinStockLevel)
}

func TestCreateKeepsSuppliedBarcode(t *testing.T) {
	svc := NewService(memory.NewProductStore(), nil)

	p := validProduct()
	p.Barcode = "123456789012"
	p.MinStockLevel = 3

	created, err := svc.Create(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, "123456789012", created.Barcode)
	assert.Equal(t, 3, created.MinStockLevel)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(memory.NewProductStore(), nil)

	p := validProduct()
	p.Category = "Livestock"
	_, err := svc.Create(context.Background(), p)
	assert.ErrorIs(t, err, models.ErrValidation)

	p = validProduct()
	p.Price = -1
	_, err = svc.Create(context.Background(), p)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListByCategory(t *testing.T) {
	svc := NewService(memory.NewProductStore(), nil)

	seeds := validProduct()
	_, err := svc.Create(context.Background(), seeds)
	require.NoError(t, err)

	tools := validProduct()
	tools.Name = "Hand Hoe"
	tools.Category = models.CategoryTools
	_, err = svc.Create(context.Background(), tools)
	require.NoError(t, err)

	hits, err := svc.ListByCategory(context.Background(), models.CategoryTools)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Hand Hoe", hits[0].Name)

	all, err := svc.ListByCategory(context.Background(), "All")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListByCategory(context.Background(), "Livestock")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateStock(t *testing.T) {
	store := memory.NewProductStore()
	svc := NewService(store, nil)

	created, err := svc.Create(context.Background(), validProduct())
	require.NoError(t, err)

	updated, err := svc.UpdateStock(context.Background(), created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.StockQuantity)
	assert.Equal(t, models.StockStatusLow, updated.StockStatus())

	_, err = svc.UpdateStock(context.Background(), created.ID, -1)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.UpdateStock(context.Background(), 42, 7)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLowStock(t *testing.T) {
	store := memory.NewProductStore()
	svc := NewService(store, nil)

	healthy := validProduct()
	healthy.StockQuantity = 50
	_, err := svc.Create(context.Background(), healthy)
	require.NoError(t, err)

	scarce := validProduct()
	scarce.Name = "Drip Line"
	scarce.StockQuantity = 2
	_, err = svc.Create(context.Background(), scarce)
	require.NoError(t, err)

	low, err := svc.LowStock(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Drip Line", low[0].Name)
}
