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

	checkAvailabilityHandler "github.com/mistvalley/booking-engine/internal/api/handlers/check_availability"
	createBookingHandler "github.com/mistvalley/booking-engine/internal/api/handlers/create_booking"
	getQuoteHandler "github.com/mistvalley/booking-engine/internal/api/handlers/get_quote"
	getRecentBookingsHandler "github.com/mistvalley/booking-engine/internal/api/handlers/get_recent_bookings"
	getRoomsHandler "github.com/mistvalley/booking-engine/internal/api/handlers/get_rooms"
	"github.com/mistvalley/booking-engine/internal/api/middleware"
	"github.com/mistvalley/booking-engine/internal/config"
	bookingLogRepo "github.com/mistvalley/booking-engine/internal/infra/storage/bookinglog"
	stayClient "github.com/mistvalley/booking-engine/internal/integrations/stayapi"
	catalogService "github.com/mistvalley/booking-engine/internal/service/catalog"
	journalService "github.com/mistvalley/booking-engine/internal/service/journal"
	checkAvailabilityUC "github.com/mistvalley/booking-engine/internal/usecase/check_availability"
	createBookingUC "github.com/mistvalley/booking-engine/internal/usecase/create_booking"
	"github.com/mistvalley/booking-engine/pkg/logger"
	"github.com/mistvalley/booking-engine/pkg/metrics"
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

	log.Info("Starting booking-engine...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Наблюдатель upstream-запросов передаётся интерфейсом только когда
	// метрики включены, иначе клиент получил бы ненулевой интерфейс с nil внутри
	var upstreamObserver stayClient.Observer
	var availabilityMetrics checkAvailabilityUC.Metrics
	var bookingMetrics createBookingUC.Metrics
	if metricsCollector != nil {
		upstreamObserver = metricsCollector
		availabilityMetrics = metricsCollector
		bookingMetrics = metricsCollector
	}

	// Инициализируем клиента бэкенда усадьбы
	stay := stayClient.NewClient(
		cfg.StayAPI.URL,
		time.Duration(cfg.StayAPI.Timeout)*time.Second,
		log,
		upstreamObserver,
	)
	log.Info("StayAPI client initialized (url=%s, timeout=%ds)", cfg.StayAPI.URL, cfg.StayAPI.Timeout)

	// Подключаем журнал бронирований (опционально)
	var bookingJournal createBookingUC.BookingJournal
	var journalRepository *bookingLogRepo.Repository

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		journalRepository = bookingLogRepo.NewRepository(db)
		bookingJournal = journalRepository
	} else {
		log.Info("Booking journal disabled, submissions will not be persisted")
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(stay, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(stay, availabilityMetrics, log)
	createBookingUseCase := createBookingUC.NewUseCase(stay, bookingJournal, bookingMetrics, log)

	// Инициализируем handlers
	getRooms := getRoomsHandler.NewHandler(catalogSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getQuote := getQuoteHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог комнат с лимитами типов
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// Проверка доступности комнаты на диапазон дат
	api.HandleFunc("/rooms/{roomId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Предварительный расчёт стоимости проживания
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Лента журнала бронирований (только при включённом журнале)
	if cfg.Database.Enabled {
		journalSvc := journalService.NewService(journalRepository, log)
		getRecentBookings := getRecentBookingsHandler.NewHandler(journalSvc, log)
		api.HandleFunc("/bookings/recent", getRecentBookings.Handle).Methods(http.MethodGet)
		log.Info("Booking journal endpoint enabled")
	}

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
