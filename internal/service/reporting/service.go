package reporting

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/repository"
	"github.com/agrodesk/agrodesk/internal/repository/sheets"
)

// ErrExportDisabled indicates no export spreadsheet is configured.
var ErrExportDisabled = errors.New("report export is not configured")

const (
	topRankLimit       = 5
	dashboardLowStock  = 5
	dashboardSales     = 5
	dashboardCustomers = 4
	reportLowStock     = 10

	exportRange = "Reports!A:L"
	dateLayout  = "2006-01-02"
)

// Service assembles dashboard and ranged reports from the four record
// stores and optionally exports report rows to a spreadsheet.
type Service struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	sales     repository.SaleRepository
	suppliers repository.SupplierRepository
	exporter  sheets.Exporter
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a new reporting service. The exporter may be nil, in
// which case Export returns ErrExportDisabled.
func NewService(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	suppliers repository.SupplierRepository,
	exporter sheets.Exporter,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		customers: customers,
		products:  products,
		sales:     sales,
		suppliers: suppliers,
		exporter:  exporter,
		logger:    logger,
		now:       time.Now,
	}
}

// Dashboard builds the landing-page payload. The three collections are
// fetched concurrently; a single failure fails the whole report and cancels
// the remaining fetches.
func (s *Service) Dashboard(ctx context.Context) (models.DashboardReport, error) {
	var (
		allSales     []models.Sale
		allProducts  []models.Product
		allCustomers []models.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		allSales, err = s.sales.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		allProducts, err = s.products.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		allCustomers, err = s.customers.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DashboardReport{}, err
	}

	return models.DashboardReport{
		Metrics:         ComputeSalesMetrics(allSales),
		LowStock:        LowStockProducts(allProducts, dashboardLowStock),
		RecentSales:     head(allSales, dashboardSales),
		RecentCustomers: head(allCustomers, dashboardCustomers),
	}, nil
}

// SalesReport builds the ranged analytics payload for one range preset.
func (s *Service) SalesReport(ctx context.Context, kind models.RangeKind) (models.SalesReport, error) {
	from, to, err := ResolveRange(kind, s.now())
	if err != nil {
		return models.SalesReport{}, err
	}

	var (
		allSales     []models.Sale
		allProducts  []models.Product
		allCustomers []models.Customer
		allSuppliers []models.Supplier
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		allSales, err = s.sales.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		allProducts, err = s.products.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		allCustomers, err = s.customers.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		allSuppliers, err = s.suppliers.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.SalesReport{}, err
	}

	ranged := FilterByDateRange(allSales, from, to)

	return models.SalesReport{
		Range:          kind,
		From:           from,
		To:             to,
		Metrics:        ComputeSalesMetrics(ranged),
		TopCustomers:   TopCustomers(ranged, topRankLimit),
		TopProducts:    TopProducts(ranged, topRankLimit),
		LowStock:       LowStockProducts(allProducts, reportLowStock),
		Suppliers:      SupplierReliability(allSuppliers),
		TotalCustomers: len(allCustomers),
		TotalProducts:  len(allProducts),
	}, nil
}

// Export appends the current ranged report as one spreadsheet row.
func (s *Service) Export(ctx context.Context, kind models.RangeKind) (models.SalesReport, error) {
	if s.exporter == nil {
		return models.SalesReport{}, ErrExportDisabled
	}

	report, err := s.SalesReport(ctx, kind)
	if err != nil {
		return models.SalesReport{}, err
	}

	row := []interface{}{
		s.now().Format(dateLayout),
		string(report.Range),
		report.From.Format(dateLayout),
		report.To.Format(dateLayout),
		report.Metrics.TotalSales,
		report.Metrics.TotalOrders,
		report.Metrics.AverageOrderValue,
		report.Metrics.PaidAmount,
		report.Metrics.PendingAmount,
		len(report.LowStock),
		report.Suppliers.AverageReliability,
		report.TotalCustomers,
	}
	if err := s.exporter.AppendRow(ctx, exportRange, row); err != nil {
		return models.SalesReport{}, err
	}

	s.logger.Info("report exported", zap.String("range", string(report.Range)))
	return report, nil
}

func head[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
