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

	cancelBookingHandler "github.com/m04kA/SMC-VoiceBooking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-VoiceBooking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-VoiceBooking/internal/api/handlers/create_booking"
	facilitiesHandler "github.com/m04kA/SMC-VoiceBooking/internal/api/handlers/facilities"
	functionCallHandler "github.com/m04kA/SMC-VoiceBooking/internal/api/handlers/function_call"
	getFacilityBookingsHandler "github.com/m04kA/SMC-VoiceBooking/internal/api/handlers/get_facility_bookings"
	healthHandler "github.com/m04kA/SMC-VoiceBooking/internal/api/handlers/health"
	voiceWebhookHandler "github.com/m04kA/SMC-VoiceBooking/internal/api/handlers/voice_webhook"
	"github.com/m04kA/SMC-VoiceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VoiceBooking/internal/api/realtime"
	"github.com/m04kA/SMC-VoiceBooking/internal/config"
	"github.com/m04kA/SMC-VoiceBooking/internal/infra/calendar"
	googleCalendar "github.com/m04kA/SMC-VoiceBooking/internal/infra/calendar/google"
	memoryCalendar "github.com/m04kA/SMC-VoiceBooking/internal/infra/calendar/memory"
	"github.com/m04kA/SMC-VoiceBooking/internal/infra/mq"
	courtEventsRepo "github.com/m04kA/SMC-VoiceBooking/internal/infra/storage/courtevents"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/availability"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/bookings"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/facilities"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/functions"
	checkAvailabilityUC "github.com/m04kA/SMC-VoiceBooking/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-VoiceBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VoiceBooking/pkg/keylock"
	"github.com/m04kA/SMC-VoiceBooking/pkg/logger"
	"github.com/m04kA/SMC-VoiceBooking/pkg/metrics"
	"github.com/m04kA/SMC-VoiceBooking/pkg/tracing"
	"github.com/m04kA/SMC-VoiceBooking/pkg/txmanager"
)

const (
	serviceVersion = "1.0.0"
	eventsAppID    = "voicebooking"
)

func main() {
	// Загружаем конфигурацию (.env -> config.toml -> переменные окружения)
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

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

	log.Info("Starting SMC-VoiceBooking...")
	log.Info("Configuration loaded from %s", configPath)

	ctx := context.Background()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем трейсинг (если включен)
	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.Init(ctx, cfg.Tracing.ServiceName, serviceVersion, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatal("Failed to initialize tracing: %v", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(shutdownCtx); err != nil {
				log.Error("Failed to flush traces: %v", err)
			}
		}()
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.Endpoint)
	}

	// Загружаем справочник площадок
	directory, err := facilities.LoadFile(cfg.Booking.FacilitiesFile, log)
	if err != nil {
		log.Fatal("Failed to load facilities: %v", err)
	}
	log.Info("Facilities loaded from %s: %d", cfg.Booking.FacilitiesFile, directory.Len())

	// Подключаем хранилище календаря
	store, closeStore, err := openCalendarStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize calendar store: %v", err)
	}
	defer closeStore()

	// Интерфейсы остаются nil, если календарь не настроен
	var (
		calendarReader availability.CalendarReader
		calendarWriter createBookingUC.CalendarWriter
		calendarEvents bookings.EventStore
	)
	if store != nil {
		instrumented := calendar.NewInstrumented(store, metricsCollector)
		calendarReader = instrumented
		calendarWriter = instrumented
		calendarEvents = instrumented
		log.Info("Calendar store initialized (provider=%s)", cfg.Calendar.Provider)
	} else {
		log.Warn("Calendar store is not configured: reads follow open_on_read_failure=%t, bookings are rejected",
			cfg.Booking.OpenOnReadFailure)
	}

	// Публикация событий бронирования (если включена)
	var eventPublisher createBookingUC.EventPublisher
	if cfg.Events.Enabled {
		publisher, err := mq.NewPublisher(cfg.Events.RabbitURL, cfg.Events.Exchange, eventsAppID)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		eventPublisher = publisher
		log.Info("Booking events are published to exchange %s", cfg.Events.Exchange)
	}

	// Инициализируем сервисы
	resolver := availability.NewResolver(calendarReader, cfg.Booking.OpenOnReadFailure, metricsCollector, log)
	bookingService := bookings.NewService(
		calendarEvents,
		directory,
		eventPublisher,
		cfg.Location(),
		&bookings.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		directory,
		resolver,
		cfg.Location(),
		metricsCollector,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		directory,
		resolver,
		calendarWriter,
		eventPublisher,
		keylock.New(),
		createBookingUC.Config{
			Location:              cfg.Location(),
			RollbackPartialWrites: cfg.Booking.RollbackPartialWrites,
		},
		metricsCollector,
		log,
	)

	dispatcher := functions.NewDispatcher(checkAvailabilityUseCase, createBookingUseCase, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	functionCall := functionCallHandler.NewHandler(dispatcher, log)
	facilitiesList := facilitiesHandler.NewHandler(directory, log)
	getFacilityBookings := getFacilityBookingsHandler.NewHandler(bookingService, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingService, log)
	voiceWebhook := voiceWebhookHandler.NewHandler(directory, log)
	realtimeSessions := realtime.NewHandler(directory, dispatcher, metricsCollector, realtime.DefaultConfig(), log)
	health := healthHandler.NewHandler(directory, healthHandler.Options{
		Version:            serviceVersion,
		CalendarProvider:   cfg.Calendar.Provider,
		CalendarConfigured: cfg.CalendarConfigured(),
		OpenAIConfigured:   cfg.Voice.OpenAIAPIKey != "",
		EventsEnabled:      cfg.Events.Enabled,
	})

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Служебные endpoints
	r.HandleFunc("/", health.HandleRoot).Methods(http.MethodGet)
	r.HandleFunc("/health", health.HandleHealth).Methods(http.MethodGet)

	// Площадки
	r.HandleFunc("/facilities", facilitiesList.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/facilities/{facilityId}", facilitiesList.HandleGet).Methods(http.MethodGet)

	// Телефония (Twilio / Exotel)
	r.HandleFunc("/voice/webhook", voiceWebhook.HandleIncoming).Methods(http.MethodPost)
	r.HandleFunc("/voice/webhook", voiceWebhook.HandleVerify).Methods(http.MethodGet)
	r.HandleFunc("/voice/status", voiceWebhook.HandleStatus).Methods(http.MethodGet)

	// Realtime сессии ассистента
	r.HandleFunc("/realtime", realtimeSessions.Handle).Methods(http.MethodGet)
	r.HandleFunc("/realtime/status", realtimeSessions.HandleStatus).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Функции ассистента
	api.HandleFunc("/functions", functionCall.HandleDefinitions).Methods(http.MethodGet)
	api.HandleFunc("/functions/call", functionCall.Handle).Methods(http.MethodPost)
	api.HandleFunc("/functions/check_availability", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/functions/create_booking", createBooking.Handle).Methods(http.MethodPost)

	// Бронирования (для персонала площадки)
	api.HandleFunc("/facilities/{facilityId}/bookings", getFacilityBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

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

// openCalendarStore создает хранилище по calendar.provider.
// Для пустого провайдера возвращает nil хранилище без ошибки
func openCalendarStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (calendar.Store, func(), error) {
	noop := func() {}

	switch cfg.Calendar.Provider {
	case config.ProviderGoogle:
		store, err := googleCalendar.New(ctx, googleCalendar.Config{
			CalendarID:      cfg.Calendar.CalendarID,
			CredentialsFile: cfg.Calendar.CredentialsFile,
			Location:        cfg.Location(),
			Timeout:         cfg.CalendarTimeout(),
		}, log)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case config.ProviderPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repo := courtEventsRepo.NewRepository(db, txmanager.NewTransactionManager(db))
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return repo, func() { _ = db.Close() }, nil

	case config.ProviderMemory:
		log.Warn("Using in-memory calendar store: bookings are lost on restart")
		return memoryCalendar.NewStore(), noop, nil

	default:
		return nil, noop, nil
	}
}
