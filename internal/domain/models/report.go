package models

import "time"

// SalesMetrics summarizes a set of sales for the dashboard and reports.
type SalesMetrics struct {
	TotalSales        float64 `json:"totalSales"`
	TotalOrders       int     `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	PaidAmount        float64 `json:"paidAmount"`
	PendingAmount     float64 `json:"pendingAmount"`
	PaidOrders        int     `json:"paidOrders"`
	PendingOrders     int     `json:"pendingOrders"`
}

// CustomerRanking is one row of the top-customers table.
type CustomerRanking struct {
	CustomerID   int     `json:"customerId"`
	CustomerName string  `json:"customerName"`
	TotalSpent   float64 `json:"totalSpent"`
	OrderCount   int     `json:"orderCount"`
}

// ProductRanking is one row of the top-products table.
type ProductRanking struct {
	ProductID    int     `json:"productId"`
	ProductName  string  `json:"productName"`
	QuantitySold int     `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
}

// SupplierReliabilityReport counts suppliers per reliability band.
type SupplierReliabilityReport struct {
	Total              int `json:"total"`
	Reliable           int `json:"reliable"`
	Good               int `json:"good"`
	Average            int `json:"average"`
	Poor               int `json:"poor"`
	AverageReliability int `json:"averageReliability"`
}

// RangeKind names the report date-range presets.
type RangeKind string

const (
	RangeToday     RangeKind = "today"
	RangeLast7     RangeKind = "last7days"
	RangeLast30    RangeKind = "last30days"
	RangeThisMonth RangeKind = "thisMonth"
)

// DashboardReport is the landing-page payload.
type DashboardReport struct {
	Metrics         SalesMetrics `json:"metrics"`
	LowStock        []Product    `json:"lowStock"`
	RecentSales     []Sale       `json:"recentSales"`
	RecentCustomers []Customer   `json:"recentCustomers"`
}

// SalesReport is the ranged analytics payload.
type SalesReport struct {
	Range          RangeKind                 `json:"range"`
	From           time.Time                 `json:"from"`
	To             time.Time                 `json:"to"`
	Metrics        SalesMetrics              `json:"metrics"`
	TopCustomers   []CustomerRanking         `json:"topCustomers"`
	TopProducts    []ProductRanking          `json:"topProducts"`
	LowStock       []Product                 `json:"lowStock"`
	Suppliers      SupplierReliabilityReport `json:"suppliers"`
	TotalCustomers int                       `json:"totalCustomers"`
	TotalProducts  int                       `json:"totalProducts"`
}
