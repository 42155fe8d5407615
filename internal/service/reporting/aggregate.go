// Package reporting derives the dashboard and report statistics from fetched
// entity collections. The aggregation functions in this file are pure; the
// Service in service.go fans out the fetches and assembles the payloads.
package reporting

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

// ComputeSalesMetrics summarizes the given sales. The average order value is
// zero when the list is empty.
func ComputeSalesMetrics(sales []models.Sale) models.SalesMetrics {
	var m models.SalesMetrics
	for _, sale := range sales {
		m.TotalSales += sale.Total
		m.TotalOrders++

		switch sale.PaymentStatus {
		case models.PaymentPaid:
			m.PaidAmount += sale.Total
			m.PaidOrders++
		case models.PaymentPending:
			m.PendingAmount += sale.Total
			m.PendingOrders++
		}
	}

	if m.TotalOrders > 0 {
		m.AverageOrderValue = m.TotalSales / float64(m.TotalOrders)
	}
	return m
}

// TopCustomers ranks customers by total spend across the given sales,
// descending. Ties break on ascending customer id so the ranking is
// deterministic regardless of input order.
func TopCustomers(sales []models.Sale, limit int) []models.CustomerRanking {
	byCustomer := make(map[int]*models.CustomerRanking)
	for _, sale := range sales {
		r, ok := byCustomer[sale.CustomerID]
		if !ok {
			r = &models.CustomerRanking{CustomerID: sale.CustomerID, CustomerName: sale.CustomerName}
			byCustomer[sale.CustomerID] = r
		}
		r.TotalSpent += sale.Total
		r.OrderCount++
	}

	rankings := make([]models.CustomerRanking, 0, len(byCustomer))
	for _, r := range byCustomer {
		rankings = append(rankings, *r)
	}
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].TotalSpent != rankings[j].TotalSpent {
			return rankings[i].TotalSpent > rankings[j].TotalSpent
		}
		return rankings[i].CustomerID < rankings[j].CustomerID
	})

	return capped(rankings, limit)
}

// TopProducts ranks products by quantity sold across the given sales,
// descending. Ties break on ascending product id.
func TopProducts(sales []models.Sale, limit int) []models.ProductRanking {
	byProduct := make(map[int]*models.ProductRanking)
	for _, sale := range sales {
		for _, item := range sale.Items {
			r, ok := byProduct[item.ProductID]
			if !ok {
				r = &models.ProductRanking{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = r
			}
			r.QuantitySold += item.Quantity
			r.Revenue += item.Total
		}
	}

	rankings := make([]models.ProductRanking, 0, len(byProduct))
	for _, r := range byProduct {
		rankings = append(rankings, *r)
	}
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].QuantitySold != rankings[j].QuantitySold {
			return rankings[i].QuantitySold > rankings[j].QuantitySold
		}
		return rankings[i].ProductID < rankings[j].ProductID
	})

	return capped(rankings, limit)
}

// LowStockProducts filters products at or below their reorder threshold,
// ordered lowest quantity first and capped when limit is positive.
func LowStockProducts(products []models.Product, limit int) []models.Product {
	low := make([]models.Product, 0)
	for _, p := range products {
		if p.StockQuantity <= p.MinStockLevel {
			low = append(low, p)
		}
	}
	sort.Slice(low, func(i, j int) bool {
		if low[i].StockQuantity != low[j].StockQuantity {
			return low[i].StockQuantity < low[j].StockQuantity
		}
		return low[i].ID < low[j].ID
	})
	return capped(low, limit)
}

// SupplierReliability counts suppliers per reliability band and reports the
// integer-rounded mean score.
func SupplierReliability(suppliers []models.Supplier) models.SupplierReliabilityReport {
	var report models.SupplierReliabilityReport
	var sum int
	for _, s := range suppliers {
		report.Total++
		sum += s.Reliability
		switch s.ReliabilityBand() {
		case models.BandReliable:
			report.Reliable++
		case models.BandGood:
			report.Good++
		case models.BandAverage:
			report.Average++
		default:
			report.Poor++
		}
	}

	if report.Total > 0 {
		report.AverageReliability = int(math.Round(float64(sum) / float64(report.Total)))
	}
	return report
}

// FilterByDateRange keeps the sales ordered within [from, to], both bounds
// inclusive.
func FilterByDateRange(sales []models.Sale, from, to time.Time) []models.Sale {
	filtered := make([]models.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.OrderDate.Before(from) || sale.OrderDate.After(to) {
			continue
		}
		filtered = append(filtered, sale)
	}
	return filtered
}

// ResolveRange translates a range preset into concrete bounds. Today uses a
// half-open tomorrow boundary so a timezone edge cannot double-count a sale.
func ResolveRange(kind models.RangeKind, now time.Time) (from, to time.Time, err error) {
	switch kind {
	case models.RangeToday:
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 0, 1)
	case models.RangeLast7:
		from = now.AddDate(0, 0, -7)
		to = now
	case models.RangeLast30:
		from = now.AddDate(0, 0, -30)
		to = now
	case models.RangeThisMonth, "":
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown report range %q", models.ErrValidation, kind)
	}
	return from, to, nil
}

func capped[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
