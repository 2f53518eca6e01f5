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
	"github.com/redis/go-redis/v9"

	clearDraftHandler "github.com/m04kA/SMC-HallBooking/internal/api/handlers/clear_draft"
	createDraftHandler "github.com/m04kA/SMC-HallBooking/internal/api/handlers/create_draft"
	getAvailableSlotsHandler "github.com/m04kA/SMC-HallBooking/internal/api/handlers/get_available_slots"
	getDraftHandler "github.com/m04kA/SMC-HallBooking/internal/api/handlers/get_draft"
	listAdminBookingsHandler "github.com/m04kA/SMC-HallBooking/internal/api/handlers/list_admin_bookings"
	listHallsHandler "github.com/m04kA/SMC-HallBooking/internal/api/handlers/list_halls"
	listTimeSlotsHandler "github.com/m04kA/SMC-HallBooking/internal/api/handlers/list_time_slots"
	patchDraftHandler "github.com/m04kA/SMC-HallBooking/internal/api/handlers/patch_draft"
	submitBookingHandler "github.com/m04kA/SMC-HallBooking/internal/api/handlers/submit_booking"
	updateBookingStatusHandler "github.com/m04kA/SMC-HallBooking/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-HallBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HallBooking/internal/catalog"
	"github.com/m04kA/SMC-HallBooking/internal/config"
	"github.com/m04kA/SMC-HallBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-HallBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-HallBooking/internal/integrations/events"
	bookingsService "github.com/m04kA/SMC-HallBooking/internal/service/bookings"
	draftsService "github.com/m04kA/SMC-HallBooking/internal/service/drafts"
	applyTransitionUC "github.com/m04kA/SMC-HallBooking/internal/usecase/apply_transition"
	getAvailableSlotsUC "github.com/m04kA/SMC-HallBooking/internal/usecase/get_available_slots"
	submitBookingUC "github.com/m04kA/SMC-HallBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-HallBooking/internal/validation"
	"github.com/m04kA/SMC-HallBooking/pkg/logger"
	"github.com/m04kA/SMC-HallBooking/pkg/metrics"
)

// eventPublisher общий интерфейс kafka publisher и NopPublisher
type eventPublisher interface {
	BookingSubmitted(ctx context.Context, booking domain.Booking) error
	StatusChanged(ctx context.Context, booking domain.Booking) error
	Close() error
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("HALLBOOKING_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-HallBooking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Catalog.Location()
	if err != nil {
		log.Fatal("Failed to load catalog timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент сервиса бронирований
	bookingTimeout := time.Duration(cfg.BookingService.Timeout) * time.Second
	bookingClient := bookingservice.NewClient(
		cfg.BookingService.URL,
		bookingservice.Paths{
			Halls:         cfg.BookingService.HallsPath,
			Bookings:      cfg.BookingService.BookingsPath,
			Availability:  cfg.BookingService.AvailabilityPath,
			AdminBookings: cfg.BookingService.AdminBookingsPath,
		},
		bookingTimeout,
		log,
	)
	if metricsCollector != nil {
		bookingClient.WithObserver(metricsCollector)
	}
	log.Info("Booking service client initialized (url=%s, timeout=%ds)",
		cfg.BookingService.URL, cfg.BookingService.Timeout)

	// Каталог залов
	hallCatalog, err := catalog.NewFromConfig(cfg.Catalog)
	if err != nil {
		log.Fatal("Failed to build catalog: %v", err)
	}
	if cfg.Catalog.Source == config.CatalogSourceService {
		hallCatalog = loadServiceCatalog(hallCatalog, bookingClient, log)
	}
	log.Info("Catalog ready: %d halls, %d time slots",
		len(hallCatalog.ListHalls()), len(hallCatalog.ListTimeSlots()))

	// Валидатор черновиков
	draftValidator, err := validation.New(hallCatalog, location)
	if err != nil {
		log.Fatal("Failed to initialize validator: %v", err)
	}

	// Хранилище черновиков
	var draftRepository draftsService.DraftRepository
	switch cfg.Drafts.Backend {
	case config.DraftBackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Drafts stored in postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		draftRepository = draftRepo.NewPostgresRepository(db, cfg.Drafts.TTL())

	default:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal("Failed to parse redis url: %v", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Drafts stored in redis (addr=%s, ttl=%s)", opts.Addr, cfg.Drafts.TTL())

		draftRepository = draftRepo.NewRedisRepository(rdb, cfg.Drafts.KeyPrefix, cfg.Drafts.TTL())
	}

	// Публикация событий
	var publisher eventPublisher = events.NopPublisher{}
	if cfg.Events.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic, bookingTimeout, log)
		log.Info("Booking events published to kafka topic %s", cfg.Events.Topic)
	}
	defer publisher.Close()

	// Инициализируем сервисы
	draftSvc := draftsService.NewService(draftRepository, draftValidator, draftsService.RealTimeProvider{}, log)
	bookingSvc := bookingsService.NewService(bookingClient, location, bookingsService.RealTimeProvider{}, log)

	// Инициализируем use cases
	var (
		submissionMetrics submitBookingUC.Metrics
		transitionMetrics applyTransitionUC.Metrics
	)
	if metricsCollector != nil {
		submissionMetrics = metricsCollector
		transitionMetrics = metricsCollector
	}

	submitBookingUseCase := submitBookingUC.NewUseCase(
		draftValidator,
		hallCatalog,
		draftSvc,
		bookingClient,
		publisher,
		submissionMetrics,
		submitBookingUC.Options{
			Location:          location,
			CheckAvailability: cfg.Submission.CheckAvailability,
			PublishTimeout:    bookingTimeout,
		},
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		hallCatalog,
		bookingClient,
		location,
		log,
	)
	applyTransitionUseCase := applyTransitionUC.NewUseCase(
		bookingClient,
		publisher,
		transitionMetrics,
		log,
	)

	// Инициализируем handlers
	listHalls := listHallsHandler.NewHandler(hallCatalog)
	listTimeSlots := listTimeSlotsHandler.NewHandler(hallCatalog)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createDraft := createDraftHandler.NewHandler(draftSvc, log)
	getDraft := getDraftHandler.NewHandler(draftSvc, log)
	patchDraft := patchDraftHandler.NewHandler(draftSvc, log)
	clearDraft := clearDraftHandler.NewHandler(draftSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	listAdminBookings := listAdminBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(applyTransitionUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены).
	// Middleware метрик внешний, чтобы паника после Recovery учитывалась как 500
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r.Use(middleware.Recovery(log))

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Каталог ---
	api.HandleFunc("/halls", listHalls.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", listTimeSlots.Handle).Methods(http.MethodGet)

	// Доступность слотов зала на дату
	api.HandleFunc("/halls/{hallId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Черновики ---
	api.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{key}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{key}", patchDraft.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/drafts/{key}", clearDraft.Handle).Methods(http.MethodDelete)

	// Отправка черновика в сервис бронирований
	api.HandleFunc("/drafts/{key}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <token>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth)

	admin.HandleFunc("/bookings", listAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

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

// loadServiceCatalog заменяет залы каталога ответом GET /halls.
// При ошибке остается статический каталог
func loadServiceCatalog(static *catalog.Catalog, client *bookingservice.Client, log *logger.Logger) *catalog.Catalog {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	halls, err := client.ListHalls(ctx)
	if err != nil {
		log.Warn("Failed to fetch halls from booking service, using static catalog: %v", err)
		return static
	}

	domainHalls := make([]domain.Hall, 0, len(halls))
	for _, h := range halls {
		domainHalls = append(domainHalls, h.ToDomain())
	}

	fromService, err := static.WithHalls(domainHalls)
	if err != nil {
		log.Warn("Booking service returned an invalid hall list, using static catalog: %v", err)
		return static
	}

	log.Info("Catalog loaded from booking service: %d halls", len(domainHalls))
	return fromService
}
