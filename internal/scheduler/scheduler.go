package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/service/reporting"
	"github.com/agrodesk/agrodesk/internal/service/sales"
)

// overdueAfter is how long a pending sale may stay unpaid before the nightly
// digest flags it overdue.
const overdueAfter = 30 * 24 * time.Hour

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	salesSvc     *sales.Service
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The cron runs in the
// configured timezone, falling back to UTC when the name does not resolve.
func NewScheduler(cfg config.ReportingConfig, reportingSvc *reporting.Service, salesSvc *sales.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to UTC", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.UTC
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		reportingSvc: reportingSvc,
		salesSvc:     salesSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDailyDigest)
	if err != nil {
		s.logger.Error("failed to schedule daily digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailyDigest() {
	s.logger.Info("running daily digest")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	flagged, err := s.salesSvc.FlagOverdue(ctx, overdueAfter)
	if err != nil {
		s.logger.Error("failed to flag overdue sales", zap.Error(err))
	} else if flagged > 0 {
		s.logger.Info("flagged overdue sales", zap.Int("count", flagged))
	}

	report, err := s.reportingSvc.Export(ctx, models.RangeToday)
	if errors.Is(err, reporting.ErrExportDisabled) {
		report, err = s.reportingSvc.SalesReport(ctx, models.RangeToday)
	}
	if err != nil {
		s.logger.Error("failed to build daily digest report", zap.Error(err))
		return
	}

	s.logger.Info("daily digest complete",
		zap.Float64("total_sales", report.Metrics.TotalSales),
		zap.Int("total_orders", report.Metrics.TotalOrders),
		zap.Int("low_stock_products", len(report.LowStock)))
}
