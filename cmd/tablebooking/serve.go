package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	createBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/create_booking"
	createEventHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/create_event"
	deleteBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_booking"
	getRestaurantHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_restaurant"
	listBookingsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/list_bookings"
	listEventsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/list_events"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/config"
	"github.com/m04kA/SMC-TableBooking/internal/horizon"
	recordsRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/records"
	recordsService "github.com/m04kA/SMC-TableBooking/internal/service/records"
	restaurantService "github.com/m04kA/SMC-TableBooking/internal/service/restaurant"
	createBookingUC "github.com/m04kA/SMC-TableBooking/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-TableBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-TableBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
	"github.com/m04kA/SMC-TableBooking/pkg/txmanager"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bookings/events HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			return serve(cfg, log)
		},
	}
}

func serve(cfg *config.Config, log *logger.Logger) error {
	log.Info("Starting SMC-TableBooking API...")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		dbRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	repository := recordsRepo.NewRepository(wrappedDB)

	tables := cfg.Restaurant.TableIDs()

	// Сервисы и use cases
	recordsSvc := recordsService.NewService(repository, log)
	restaurantSvc := restaurantService.NewService(tables, cfg.Horizon.DaysAhead, horizon.RealClock{})
	createBookingUseCase := createBookingUC.NewUseCase(repository, txMgr, tables, cfg.Horizon.DaysAhead, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(repository, tables, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(recordsSvc, log)
	getBooking := getBookingHandler.NewHandler(recordsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(recordsSvc, log)
	listEvents := listEventsHandler.NewHandler(recordsSvc, log)
	createEvent := createEventHandler.NewHandler(recordsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getRestaurant := getRestaurantHandler.NewHandler(restaurantSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", healthHandler(wrappedDB)).Methods(http.MethodGet)

	// Записи: бронирования и события
	r.HandleFunc("/booking", listBookings.Handle).Methods(http.MethodGet)
	r.HandleFunc("/booking", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/booking/{id}", getBooking.Handle).Methods(http.MethodGet)
	r.HandleFunc("/booking/{id}", deleteBooking.Handle).Methods(http.MethodDelete)
	r.HandleFunc("/event", listEvents.Handle).Methods(http.MethodGet)
	r.HandleFunc("/event", createEvent.Handle).Methods(http.MethodPost)

	// Занятость и план зала
	r.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	r.HandleFunc("/restaurant", getRestaurant.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

type pinger interface {
	PingContext(ctx context.Context) error
}

func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
