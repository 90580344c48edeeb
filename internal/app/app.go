package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/config"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/handler"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/loader"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/middleware"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/notification"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/repository"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/router"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/scheduler"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/service"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/service/ports"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/sheets"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HouseLy",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	ctx := context.Background()

	sheetClient := a.initSheets(ctx)

	properties, reservations, err := loader.Load(ctx, sourceOrNil(sheetClient), a.log)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	propertyStore := repository.NewPropertyStore(properties)
	reservationStore := repository.NewReservationStore(reservations)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	availabilityService := service.NewAvailabilityService(reservationStore)
	pricingService := service.NewPricingService(propertyStore)
	catalogService := service.NewCatalogService(propertyStore, reservationStore)
	searchService := service.NewSearchService(propertyStore, reservationStore, availabilityService, a.log)
	mirrorService := service.NewMirrorService(appenderOrNil(sheetClient), n, a.log)
	bookingService := service.NewBookingService(
		reservationStore,
		propertyStore,
		availabilityService,
		pricingService,
		mirrorService,
		n,
		a.log,
	)

	a.scheduler = scheduler.New(
		mirrorService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(searchService, bookingService, catalogService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// initSheets returns nil when the spreadsheet is not configured or the
// client cannot be built; the loader then uses the embedded data and
// the mirror stays disabled.
func (a *App) initSheets(ctx context.Context) *sheets.Client {
	if !a.cfg.Sheets.Enabled() {
		a.log.Info("google sheets not configured, using embedded data")
		return nil
	}

	client, err := sheets.NewClient(ctx, a.cfg.Sheets, a.log)
	if err != nil {
		a.log.Error("failed to init sheets client, using embedded data",
			logger.String("error", err.Error()),
		)
		return nil
	}

	a.log.Info("google sheets client initialized",
		logger.String("spreadsheet_id", a.cfg.Sheets.SpreadsheetID),
	)
	return client
}

// A nil *sheets.Client must become a nil interface, not an interface
// holding a nil pointer.
func sourceOrNil(c *sheets.Client) loader.Source {
	if c == nil {
		return nil
	}
	return c
}

func appenderOrNil(c *sheets.Client) ports.SheetAppender {
	if c == nil {
		return nil
	}
	return c
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
