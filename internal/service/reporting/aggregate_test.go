package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

func saleOn(day time.Time, customerID int, name string, total float64, status models.PaymentStatus) models.Sale {
	return models.Sale{
		CustomerID:    customerID,
		CustomerName:  name,
		Total:         total,
		PaymentStatus: status,
		OrderDate:     day,
	}
}

func TestComputeSalesMetrics(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		saleOn(day, 1, "Alice", 100, models.PaymentPaid),
		saleOn(day, 2, "Bob", 40, models.PaymentPending),
		saleOn(day, 1, "Alice", 60, models.PaymentPaid),
	}

	m := ComputeSalesMetrics(sales)

	assert.Equal(t, 200.0, m.TotalSales)
	assert.Equal(t, 3, m.TotalOrders)
	assert.InDelta(t, 200.0/3.0, m.AverageOrderValue, 1e-9)
	assert.Equal(t, 160.0, m.PaidAmount)
	assert.Equal(t, 40.0, m.PendingAmount)
	assert.Equal(t, 2, m.PaidOrders)
	assert.Equal(t, 1, m.PendingOrders)
}

func TestComputeSalesMetricsEmpty(t *testing.T) {
	m := ComputeSalesMetrics(nil)
	assert.Zero(t, m.AverageOrderValue)
	assert.Zero(t, m.TotalOrders)
}

func TestTopCustomers(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		saleOn(day, 2, "Bob", 30, models.PaymentPaid),
		saleOn(day, 1, "Alice", 50, models.PaymentPaid),
		saleOn(day, 1, "Alice", 20, models.PaymentPending),
	}

	top := TopCustomers(sales, 5)

	require.Len(t, top, 2)
	assert.Equal(t, models.CustomerRanking{CustomerID: 1, CustomerName: "Alice", TotalSpent: 70, OrderCount: 2}, top[0])
	assert.Equal(t, models.CustomerRanking{CustomerID: 2, CustomerName: "Bob", TotalSpent: 30, OrderCount: 1}, top[1])
}

func TestTopCustomersTieBreaksOnID(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		saleOn(day, 9, "Iris", 50, models.PaymentPaid),
		saleOn(day, 3, "Carol", 50, models.PaymentPaid),
	}

	top := TopCustomers(sales, 5)

	require.Len(t, top, 2)
	assert.Equal(t, 3, top[0].CustomerID)
	assert.Equal(t, 9, top[1].CustomerID)
}

func TestTopProducts(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		{OrderDate: day, Items: []models.SaleItem{
			{ProductID: 1, ProductName: "Maize Seed", Quantity: 3, Total: 30},
			{ProductID: 2, ProductName: "NPK 15-15-15", Quantity: 1, Total: 25},
		}},
		{OrderDate: day, Items: []models.SaleItem{
			{ProductID: 2, ProductName: "NPK 15-15-15", Quantity: 4, Total: 100},
		}},
	}

	top := TopProducts(sales, 5)

	require.Len(t, top, 2)
	assert.Equal(t, models.ProductRanking{ProductID: 2, ProductName: "NPK 15-15-15", QuantitySold: 5, Revenue: 125}, top[0])
	assert.Equal(t, models.ProductRanking{ProductID: 1, ProductName: "Maize Seed", QuantitySold: 3, Revenue: 30}, top[1])
}

func TestLowStockProducts(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Hoe", StockQuantity: 50, MinStockLevel: 10},
		{ID: 2, Name: "Drip Line", StockQuantity: 4, MinStockLevel: 10},
		{ID: 3, Name: "Sprayer", StockQuantity: 0, MinStockLevel: 5},
		{ID: 4, Name: "Urea", StockQuantity: 10, MinStockLevel: 10},
	}

	low := LowStockProducts(products, 5)

	require.Len(t, low, 3)
	assert.Equal(t, []int{3, 2, 4}, []int{low[0].ID, low[1].ID, low[2].ID})
}

func TestLowStockProductsCapped(t *testing.T) {
	products := []models.Product{
		{ID: 1, StockQuantity: 1, MinStockLevel: 10},
		{ID: 2, StockQuantity: 2, MinStockLevel: 10},
		{ID: 3, StockQuantity: 3, MinStockLevel: 10},
	}

	low := LowStockProducts(products, 2)

	require.Len(t, low, 2)
	assert.Equal(t, 1, low[0].ID)
	assert.Equal(t, 2, low[1].ID)
}

func TestSupplierReliability(t *testing.T) {
	suppliers := []models.Supplier{
		{ID: 1, Reliability: 95},
		{ID: 2, Reliability: 85},
		{ID: 3, Reliability: 72},
		{ID: 4, Reliability: 40},
	}

	report := SupplierReliability(suppliers)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 1, report.Reliable)
	assert.Equal(t, 1, report.Good)
	assert.Equal(t, 1, report.Average)
	assert.Equal(t, 1, report.Poor)
	assert.Equal(t, 73, report.AverageReliability)
}

func TestSupplierReliabilityEmpty(t *testing.T) {
	report := SupplierReliability(nil)
	assert.Zero(t, report.Total)
	assert.Zero(t, report.AverageReliability)
}

func TestResolveRangeToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	from, to, err := ResolveRange(models.RangeToday, now)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), to)
}

func TestResolveRangeThisMonth(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	from, to, err := ResolveRange(models.RangeThisMonth, now)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), from)
	assert.True(t, to.Before(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, to.After(time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)))
}

func TestResolveRangeUnknown(t *testing.T) {
	_, _, err := ResolveRange("lastYear", time.Now())
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestFilterByDateRangeInclusive(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		saleOn(from, 1, "Alice", 10, models.PaymentPaid),
		saleOn(to, 2, "Bob", 20, models.PaymentPaid),
		saleOn(from.Add(-time.Second), 3, "Carol", 30, models.PaymentPaid),
		saleOn(to.Add(time.Second), 4, "Dan", 40, models.PaymentPaid),
	}

	filtered := FilterByDateRange(sales, from, to)

	require.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].CustomerID)
	assert.Equal(t, 2, filtered[1].CustomerID)
}
