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

	cancelBookingHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/confirm_booking"
	createAllocationHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/create_allocation"
	createBookingHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/create_booking"
	deleteAllocationHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/delete_allocation"
	getAvailabilityHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/get_booking"
	getResourceHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/get_resource"
	getResourceBookingsHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/get_resource_bookings"
	getUserBookingsHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/get_user_bookings"
	listAllocationsHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/list_allocations"
	listResourcesHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/list_resources"
	reportOverbookingsHandler "github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers/report_overbookings"
	"github.com/dmtrv/BRS-AvailabilityService/internal/api/middleware"
	"github.com/dmtrv/BRS-AvailabilityService/internal/config"
	allocationRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/allocation"
	bookingRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/booking"
	resourceRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/resource"
	allocationsService "github.com/dmtrv/BRS-AvailabilityService/internal/service/allocations"
	bookingsService "github.com/dmtrv/BRS-AvailabilityService/internal/service/bookings"
	resourcesService "github.com/dmtrv/BRS-AvailabilityService/internal/service/resources"
	createBookingUC "github.com/dmtrv/BRS-AvailabilityService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/dmtrv/BRS-AvailabilityService/internal/usecase/get_availability"
	reportOverbookingsUC "github.com/dmtrv/BRS-AvailabilityService/internal/usecase/report_overbookings"
	"github.com/dmtrv/BRS-AvailabilityService/pkg/dbmetrics"
	"github.com/dmtrv/BRS-AvailabilityService/pkg/logger"
	"github.com/dmtrv/BRS-AvailabilityService/pkg/metrics"
	"github.com/dmtrv/BRS-AvailabilityService/pkg/simpletxmanager"
	"github.com/dmtrv/BRS-AvailabilityService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BRS-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		resourceRepository   *resourceRepo.Repository
		allocationRepository *allocationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		allocationRepository = allocationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		allocationRepository = allocationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	resourceSvc := resourcesService.NewService(resourceRepository, log)
	allocationSvc := allocationsService.NewService(allocationRepository, resourceRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		resourceRepository,
		allocationRepository,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		resourceRepository,
		allocationRepository,
		log,
	)

	reportOverbookingsUseCase := reportOverbookingsUC.NewUseCase(
		bookingRepository,
		resourceRepository,
		allocationRepository,
		log,
	)

	// Инициализируем handlers
	listResources := listResourcesHandler.NewHandler(resourceSvc, log)
	getResource := getResourceHandler.NewHandler(resourceSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getResourceBookings := getResourceBookingsHandler.NewHandler(bookingSvc, log)
	createAllocation := createAllocationHandler.NewHandler(allocationSvc, log)
	listAllocations := listAllocationsHandler.NewHandler(allocationSvc, log)
	deleteAllocation := deleteAllocationHandler.NewHandler(allocationSvc, log)
	reportOverbookings := reportOverbookingsHandler.NewHandler(reportOverbookingsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог ресурсов
	api.HandleFunc("/resources", listResources.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}", getResource.Handle).Methods(http.MethodGet)

	// Доступность ресурса в окне запроса
	api.HandleFunc("/resources/{resourceId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Подтверждение бронирования
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление ресурсом (для администраторов) ---
	// Бронирования ресурса в окне
	protected.HandleFunc("/resources/{resourceId}/bookings", getResourceBookings.Handle).Methods(http.MethodGet)

	// Ручные аллокации емкости
	protected.HandleFunc("/resources/{resourceId}/allocations", createAllocation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/resources/{resourceId}/allocations", listAllocations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/allocations/{allocationId}", deleteAllocation.Handle).Methods(http.MethodDelete)

	// Отчет об овербукинге
	protected.HandleFunc("/resources/{resourceId}/overbookings", reportOverbookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
