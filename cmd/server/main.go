package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/repository/mongodb"
	"github.com/agrodesk/agrodesk/internal/repository/sheets"
	"github.com/agrodesk/agrodesk/internal/scheduler"
	"github.com/agrodesk/agrodesk/internal/server/handlers"
	"github.com/agrodesk/agrodesk/internal/server/router"
	customersvc "github.com/agrodesk/agrodesk/internal/service/customers"
	productsvc "github.com/agrodesk/agrodesk/internal/service/products"
	reportingsvc "github.com/agrodesk/agrodesk/internal/service/reporting"
	salesvc "github.com/agrodesk/agrodesk/internal/service/sales"
	suppliersvc "github.com/agrodesk/agrodesk/internal/service/suppliers"
	"github.com/agrodesk/agrodesk/pkg/clients/notify"
	"github.com/agrodesk/agrodesk/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	customerRepo := mongodb.NewCustomerRepository(mongoRepo)
	productRepo := mongodb.NewProductRepository(mongoRepo)
	saleRepo := mongodb.NewSaleRepository(mongoRepo)
	supplierRepo := mongodb.NewSupplierRepository(mongoRepo)

	var notifier notify.Client
	if cfg.Notify.Enabled() {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("welcome notifications enabled")
	} else {
		baseLogger.Warn("notification base url missing, welcome messages disabled")
	}

	var exporter sheets.Exporter
	if cfg.Sheets.Enabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("report export enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, report export disabled")
	}

	customerSvc := customersvc.NewService(customerRepo, notifier, baseLogger.Named("svc.customers"))
	productSvc := productsvc.NewService(productRepo, baseLogger.Named("svc.products"))
	saleSvc := salesvc.NewService(saleRepo, baseLogger.Named("svc.sales"))
	supplierSvc := suppliersvc.NewService(supplierRepo, baseLogger.Named("svc.suppliers"))
	reportingSvc := reportingsvc.NewService(customerRepo, productRepo, saleRepo, supplierRepo, exporter, baseLogger.Named("svc.reporting"))

	engine := router.New(router.Handlers{
		Customers: handlers.NewCustomerHandler(customerSvc, baseLogger.Named("handlers.customers")),
		Products:  handlers.NewProductHandler(productSvc, baseLogger.Named("handlers.products")),
		Sales:     handlers.NewSaleHandler(saleSvc, baseLogger.Named("handlers.sales")),
		Suppliers: handlers.NewSupplierHandler(supplierSvc, baseLogger.Named("handlers.suppliers")),
		Reports:   handlers.NewReportHandler(reportingSvc, baseLogger.Named("handlers.reports")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, saleSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
