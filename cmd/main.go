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

	cancelAppointmentHandler "github.com/barberlink/BL-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/barberlink/BL-BookingService/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/barberlink/BL-BookingService/internal/api/handlers/get_available_slots"
	getShopAppointmentsHandler "github.com/barberlink/BL-BookingService/internal/api/handlers/get_shop_appointments"
	getShopProfileHandler "github.com/barberlink/BL-BookingService/internal/api/handlers/get_shop_profile"
	updateClosingDatesHandler "github.com/barberlink/BL-BookingService/internal/api/handlers/update_closing_dates"
	"github.com/barberlink/BL-BookingService/internal/api/middleware"
	"github.com/barberlink/BL-BookingService/internal/config"
	appointmentRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/appointment"
	barberRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/barber"
	profileRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/profile"
	serviceRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/service"
	appointmentsService "github.com/barberlink/BL-BookingService/internal/service/appointments"
	profileService "github.com/barberlink/BL-BookingService/internal/service/profile"
	createAppointmentUC "github.com/barberlink/BL-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/barberlink/BL-BookingService/internal/usecase/get_available_slots"
	"github.com/barberlink/BL-BookingService/pkg/dbmetrics"
	"github.com/barberlink/BL-BookingService/pkg/logger"
	"github.com/barberlink/BL-BookingService/pkg/metrics"
	"github.com/barberlink/BL-BookingService/pkg/simpletxmanager"
	"github.com/barberlink/BL-BookingService/pkg/txmanager"
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

	log.Info("Starting BL-BookingService...")
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
		profileRepository     *profileRepo.Repository
		barberRepository      *barberRepo.Repository
		serviceRepository     *serviceRepo.Repository
		appointmentRepository *appointmentRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecase создания записи)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		profileRepository = profileRepo.NewRepository(wrappedDB)
		barberRepository = barberRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		profileRepository = profileRepo.NewRepository(db)
		barberRepository = barberRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		profileRepository,
		log,
	)
	profileSvc := profileService.NewService(
		profileRepository,
		barberRepository,
		serviceRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		profileRepository,
		barberRepository,
		serviceRepository,
		appointmentRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		profileRepository,
		barberRepository,
		serviceRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getShopProfile := getShopProfileHandler.NewHandler(profileSvc, log)
	getShopAppointments := getShopAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateClosingDates := updateClosingDatesHandler.NewHandler(profileSvc, log)

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
	// PUBLIC ROUTES (без аутентификации - страница записи для гостей)
	// ============================================================

	// Публичный профиль барбершопа (расписание, барберы, даты закрытия)
	api.HandleFunc("/barbershops/{slug}", getShopProfile.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/barbershops/{slug}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание гостевой записи
	api.HandleFunc("/barbershops/{slug}/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header - дашборд владельца)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Записи барбершопа на дату
	protected.HandleFunc("/barbershops/{slug}/appointments", getShopAppointments.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Обновление дат закрытия
	protected.HandleFunc("/barbershops/{slug}/closing-dates", updateClosingDates.Handle).Methods(http.MethodPut)

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
