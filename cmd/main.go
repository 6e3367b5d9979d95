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

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	adminLoginHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/admin_login"
	createFormHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/create_form"
	createTimeSlotHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/create_time_slot"
	deleteTimeSlotHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/delete_time_slot"
	discardFormHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/discard_form"
	exportBookingsHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/export_bookings"
	formStepHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/form_step"
	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/formview"
	getAnalyticsHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/get_analytics"
	getBookingHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/get_booking"
	getConfirmationHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/get_booking_confirmation"
	getCatalogHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/get_catalog"
	getFormHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/get_form"
	getTimeSlotsHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/get_time_slots"
	listActivitiesHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/list_activities"
	listBookingsHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/list_bookings"
	quotePriceHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/quote_price"
	updateBookingStatusHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/update_booking_status"
	updateFormHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/update_form"
	updateTimeSlotHandler "github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/update_time_slot"
	"github.com/m04kA/SMC-TheatreBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TheatreBooking/internal/config"
	"github.com/m04kA/SMC-TheatreBooking/internal/infra/cache"
	"github.com/m04kA/SMC-TheatreBooking/internal/infra/cache/formsession"
	"github.com/m04kA/SMC-TheatreBooking/internal/infra/cache/ratelimit"
	activityRepo "github.com/m04kA/SMC-TheatreBooking/internal/infra/storage/activity"
	adminRepo "github.com/m04kA/SMC-TheatreBooking/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/SMC-TheatreBooking/internal/infra/storage/booking"
	timeslotRepo "github.com/m04kA/SMC-TheatreBooking/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-TheatreBooking/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
	authService "github.com/m04kA/SMC-TheatreBooking/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-TheatreBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/exports"
	formsService "github.com/m04kA/SMC-TheatreBooking/internal/service/forms"
	timeslotsService "github.com/m04kA/SMC-TheatreBooking/internal/service/timeslots"
	getAnalyticsUC "github.com/m04kA/SMC-TheatreBooking/internal/usecase/get_analytics"
	submitBookingUC "github.com/m04kA/SMC-TheatreBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-TheatreBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TheatreBooking/pkg/logger"
	"github.com/m04kA/SMC-TheatreBooking/pkg/metrics"
)

// Лимит попыток входа в админку с одного IP
const (
	loginAttemptsLimit  = 5
	loginAttemptsWindow = time.Minute
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

	log.Info("Starting SMC-TheatreBooking...")
	log.Info("Configuration loaded from config.toml")

	loc, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Подключаемся к Redis: сессии формы и лимиты
	rdb, err := cache.New(context.Background(), cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer rdb.Close()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	activityRepository := activityRepo.NewRepository(executor)
	timeslotRepository := timeslotRepo.NewRepository(executor)
	adminRepository := adminRepo.NewRepository(executor)

	// Интеграции
	linkBuilder, err := whatsapp.NewLinkBuilder(cfg.Notify.WhatsAppNumber)
	if err != nil {
		log.Fatal("Invalid WhatsApp number: %v", err)
	}

	catalog := pricing.Default()

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		activityRepository,
		catalog,
		linkBuilder,
		metricsCollector,
		log,
	)
	getAnalyticsUseCase := getAnalyticsUC.NewUseCase(bookingRepository, activityRepository, loc, log)

	// Инициализируем сервисы
	formStore := formsession.NewStore(rdb, cfg.Booking.FormTTL(), cfg.Booking.FormLockTTL())
	formSvc := formsService.NewService(
		formStore,
		activityRepository,
		submitBookingUseCase,
		catalog,
		metricsCollector,
		cfg.Booking.RequireAddress,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		activityRepository,
		exports.NewRenderer(loc),
		log,
	)
	timeslotSvc := timeslotsService.NewService(timeslotRepository, log)
	authSvc := authService.NewService(adminRepository, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), log)

	formLimiter := ratelimit.NewSlidingWindowLimiter(rdb, "forms", cfg.Booking.FormCreateLimit, cfg.Booking.FormCreateWindow())
	loginLimiter := ratelimit.NewSlidingWindowLimiter(rdb, "admin_login", loginAttemptsLimit, loginAttemptsWindow)

	// Инициализируем handlers
	presenter := formview.NewPresenter(catalog)

	createForm := createFormHandler.NewHandler(formSvc, presenter, log)
	getForm := getFormHandler.NewHandler(formSvc, presenter, log)
	updateForm := updateFormHandler.NewHandler(formSvc, presenter, log)
	nextStep := formStepHandler.NewHandler("next", formSvc.Next, presenter, log)
	backStep := formStepHandler.NewHandler("back", formSvc.Back, presenter, log)
	submitForm := formStepHandler.NewHandler("submit", formSvc.Submit, presenter, log)
	resetForm := formStepHandler.NewHandler("reset", formSvc.Reset, presenter, log)
	discardForm := discardFormHandler.NewHandler(formSvc, presenter, log)

	getCatalog := getCatalogHandler.NewHandler(catalog)
	quotePrice := quotePriceHandler.NewHandler(catalog, log)
	getPublicSlots := getTimeSlotsHandler.NewPublicHandler(timeslotSvc, log)

	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getConfirmation := getConfirmationHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listActivities := listActivitiesHandler.NewHandler(bookingSvc, log)
	getAnalytics := getAnalyticsHandler.NewHandler(getAnalyticsUseCase, log)
	getAdminSlots := getTimeSlotsHandler.NewAdminHandler(timeslotSvc, log)
	createTimeSlot := createTimeSlotHandler.NewHandler(timeslotSvc, log)
	updateTimeSlot := updateTimeSlotHandler.NewHandler(timeslotSvc, log)
	deleteTimeSlot := deleteTimeSlotHandler.NewHandler(timeslotSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма бронирования)
	// ============================================================

	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", getPublicSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing/quote", quotePrice.Handle).Methods(http.MethodPost)

	// --- Сессия формы ---
	// Создание формы ограничено по IP
	api.Handle("/forms", middleware.RateLimit(formLimiter, log)(http.HandlerFunc(createForm.Handle))).Methods(http.MethodPost)
	api.HandleFunc("/forms/{formId}", getForm.Handle).Methods(http.MethodGet)
	api.HandleFunc("/forms/{formId}", updateForm.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/forms/{formId}", discardForm.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/forms/{formId}/next", nextStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/forms/{formId}/back", backStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/forms/{formId}/submit", submitForm.Handle).Methods(http.MethodPost)
	api.HandleFunc("/forms/{formId}/reset", resetForm.Handle).Methods(http.MethodPost)

	// Вход администратора
	api.Handle("/admin/login", middleware.RateLimit(loginLimiter, log)(http.HandlerFunc(adminLogin.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/confirmation", getConfirmation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Воронка и аналитика ---
	admin.HandleFunc("/activities", listActivities.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/analytics", getAnalytics.Handle).Methods(http.MethodGet)

	// --- Слоты времени ---
	admin.HandleFunc("/time-slots", getAdminSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/time-slots", createTimeSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/time-slots/{slotId}", updateTimeSlot.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/time-slots/{slotId}", deleteTimeSlot.Handle).Methods(http.MethodDelete)

	// CORS для сайта, реальный IP клиента из X-Forwarded-For, перехват паник
	var handler http.Handler = r
	handler = handlers.CORS(
		handlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", middleware.HeaderRequestID}),
		handlers.ExposedHeaders([]string{"Content-Disposition", "Retry-After", middleware.HeaderRequestID}),
	)(handler)
	handler = handlers.ProxyHeaders(handler)
	handler = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	log.Info("Server stopped gracefully")
}
