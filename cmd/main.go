package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	assignBayHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/assign_bay"
	createAppointmentHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/create_appointment"
	createCustomerHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/create_customer"
	createPublicBookingHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/create_public_booking"
	getAppointmentHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_available_slots"
	getBaysHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_bays"
	getCustomerHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_customer"
	getPublicProfileHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_public_profile"
	getScheduleHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_schedule"
	getSettingsHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_settings"
	listCustomersHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/list_customers"
	provisionTenantHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/provision_tenant"
	transitionAppointmentHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/transition_appointment"
	updateSettingsHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/update_settings"
	upsertServiceHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/upsert_service"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/config"
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/events"
	"github.com/m04kA/SMC-DetailingService/internal/scheduling"
	appointmentsService "github.com/m04kA/SMC-DetailingService/internal/service/appointments"
	customersService "github.com/m04kA/SMC-DetailingService/internal/service/customers"
	settingsService "github.com/m04kA/SMC-DetailingService/internal/service/settings"
	settingsModels "github.com/m04kA/SMC-DetailingService/internal/service/settings/models"
	createAppointmentUC "github.com/m04kA/SMC-DetailingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-DetailingService/internal/usecase/get_available_slots"
	getScheduleUC "github.com/m04kA/SMC-DetailingService/internal/usecase/get_schedule"
	transitionAppointmentUC "github.com/m04kA/SMC-DetailingService/internal/usecase/transition_appointment"
	"github.com/m04kA/SMC-DetailingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DetailingService/pkg/logger"
	"github.com/m04kA/SMC-DetailingService/pkg/metrics"
	"github.com/m04kA/SMC-DetailingService/pkg/txmanager"
)

// tenantStore хранилище состояния студий (PostgreSQL или in-memory)
type tenantStore interface {
	Get(ctx context.Context, tenantKey string) (*domain.TenantState, error)
	Create(ctx context.Context, state *domain.TenantState) error
	Save(ctx context.Context, state *domain.TenantState) error
	ListKeys(ctx context.Context) ([]string, error)
}

type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.AppointmentEvent) error
	Close() error
}

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

	log.Info("Starting SMC-DetailingService...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище состояния студий
	var (
		store tenantStore
		txMgr txManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
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

		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		store = tenantRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)

	case config.StorageDriverMemory:
		store = tenantRepo.NewMemoryRepository()
		txMgr = tenantRepo.NewMemoryTxManager()
		log.Warn("Using in-memory storage, data will be lost on restart")
	}

	// Инициализируем публикацию событий
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(
			cfg.Kafka.Brokers,
			cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.WriteTimeout)*time.Second,
			log,
		)
		log.Info("Kafka publisher initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Ядро планирования
	scheduler := scheduling.NewScheduler()

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(
		store,
		txMgr,
		settingsService.Defaults{
			BoxCapacity:         cfg.Scheduling.DefaultBoxCapacity,
			SlotIntervalMinutes: cfg.Scheduling.DefaultSlotInterval,
		},
		log,
	)
	customersSvc := customersService.NewService(store, txMgr, log)
	appointmentsSvc := appointmentsService.NewService(store, scheduler, txMgr, log)

	// Создаем студию по умолчанию (если задана)
	if cfg.Scheduling.SeedTenantKey != "" {
		seedTenant(settingsSvc, cfg.Scheduling, log)
	}

	if keys, err := store.ListKeys(context.Background()); err != nil {
		log.Warn("Failed to list tenants: %v", err)
	} else {
		log.Info("Tenants available: %d", len(keys))
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(store, scheduler, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		store,
		scheduler,
		publisher,
		metricsCollector,
		txMgr,
		log,
	)
	transitionAppointmentUseCase := transitionAppointmentUC.NewUseCase(
		store,
		scheduler,
		publisher,
		metricsCollector,
		txMgr,
		log,
	)
	getScheduleUseCase := getScheduleUC.NewUseCase(store, scheduler, log)

	// Инициализируем handlers
	provisionTenant := provisionTenantHandler.NewHandler(settingsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	upsertService := upsertServiceHandler.NewHandler(settingsSvc, log)
	getPublicProfile := getPublicProfileHandler.NewHandler(settingsSvc, log)
	createCustomer := createCustomerHandler.NewHandler(customersSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customersSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customersSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	assignBay := assignBayHandler.NewHandler(appointmentsSvc, log)
	getBays := getBaysHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(transitionAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, false, log)
	getPublicSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, true, log)
	createPublicBooking := createPublicBookingHandler.NewHandler(createAppointmentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с rate limit)
	// ============================================================

	public := api.PathPrefix("/public/{tenantKey}").Subrouter()

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is not reachable at %s: %v", cfg.Redis.Addr, err)
		}

		limiter := middleware.NewRateLimiter(
			middleware.NewRedisCounter(rdb),
			cfg.Redis.RateLimit,
			time.Duration(cfg.Redis.RateWindowSec)*time.Second,
			cfg.Redis.FailOpen,
			cfg.Redis.TrustProxy,
			log,
		)
		public.Use(limiter.Middleware)
		log.Info("Public rate limit enabled (limit=%d, window=%ds, fail_open=%t, trust_proxy=%t)",
			cfg.Redis.RateLimit, cfg.Redis.RateWindowSec, cfg.Redis.FailOpen, cfg.Redis.TrustProxy)
	}

	// Профиль студии для страницы онлайн-записи
	public.HandleFunc("/profile", getPublicProfile.Handle).Methods(http.MethodGet)

	// Свободные слоты для онлайн-записи
	public.HandleFunc("/available-slots", getPublicSlots.Handle).Methods(http.MethodGet)

	// Онлайн-запись клиента
	public.HandleFunc("/bookings", createPublicBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Operator-ID header)
	// ============================================================

	protected := api.PathPrefix("/tenants").Subrouter()
	protected.Use(middleware.Auth)

	// --- Студии ---
	protected.HandleFunc("", provisionTenant.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/{tenantKey}/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/{tenantKey}/settings", updateSettings.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/{tenantKey}/services/{serviceId}", upsertService.Handle).Methods(http.MethodPut)

	// --- Клиенты ---
	protected.HandleFunc("/{tenantKey}/customers", createCustomer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/{tenantKey}/customers", listCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/{tenantKey}/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	protected.HandleFunc("/{tenantKey}/appointments", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/{tenantKey}/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/{tenantKey}/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/{tenantKey}/appointments/{appointmentId}/status", transitionAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/{tenantKey}/appointments/{appointmentId}/bay", assignBay.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/{tenantKey}/bays", getBays.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/{tenantKey}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}

// seedTenant создает студию из конфигурации, если её еще нет
func seedTenant(svc *settingsService.Service, cfg config.SchedulingConfig, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := svc.Provision(ctx, &settingsModels.ProvisionTenantRequest{
		TenantKey:    cfg.SeedTenantKey,
		BusinessName: cfg.SeedBusinessName,
	})
	switch {
	case err == nil:
		log.Info("Seed tenant created: tenant=%s", cfg.SeedTenantKey)
	case errors.Is(err, settingsService.ErrTenantAlreadyExists):
		log.Info("Seed tenant already exists: tenant=%s", cfg.SeedTenantKey)
	default:
		log.Fatal("Failed to create seed tenant %s: %v", cfg.SeedTenantKey, err)
	}
}
