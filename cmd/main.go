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

	createBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/get_bookings"
	updateBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-CleaningService/internal/api/middleware"
	"github.com/m04kA/SMC-CleaningService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/booking"
	cleanerRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/cleaner"
	allocationService "github.com/m04kA/SMC-CleaningService/internal/service/allocation"
	availabilityService "github.com/m04kA/SMC-CleaningService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-CleaningService/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-CleaningService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-CleaningService/internal/usecase/get_availability"
	updateBookingUC "github.com/m04kA/SMC-CleaningService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CleaningService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CleaningService/pkg/logger"
	"github.com/m04kA/SMC-CleaningService/pkg/metrics"
	"github.com/m04kA/SMC-CleaningService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CleaningService/pkg/txmanager"
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

	log.Info("Starting SMC-CleaningService...")
	log.Info("Configuration loaded from config.toml")

	// Рабочий календарь клинеров
	schedule, err := cfg.DomainSchedule()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Schedule: shift %s-%s, break %dm, non-working day %s",
		schedule.ShiftStart, schedule.ShiftEnd, schedule.BreakMinutes, schedule.NonWorkingDay)

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
		bookingRepository *bookingRepo.Repository
		cleanerRepository *cleanerRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		cleanerRepository = cleanerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		cleanerRepository = cleanerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		cleanerRepository,
		bookingRepository,
		schedule,
		log,
	)
	allocationSvc := allocationService.NewService(log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(availabilitySvc, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		availabilitySvc,
		allocationSvc,
		bookingRepository,
		txMgr,
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		availabilitySvc,
		allocationSvc,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступность клинеров на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований на дату
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос бронирования на новое время
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

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
