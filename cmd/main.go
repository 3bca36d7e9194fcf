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
	"github.com/rs/cors"

	adminLoginHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/admin_login"
	bookingSummaryHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/booking_summary"
	bulkDeleteBookingsHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/bulk_delete_bookings"
	cancelBookingHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/check_availability"
	confirmPaymentHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/delete_booking"
	estimateFeesHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/estimate_fees"
	exportBookingsHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/export_bookings"
	getBookingHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/list_rooms"
	submitLeadHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/submit_lead"
	updatePaymentStatusHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/update_payment_status"
	watchBookingsHandler "github.com/jalelchniti/smarthub-booking/internal/api/handlers/watch_bookings"
	"github.com/jalelchniti/smarthub-booking/internal/api/middleware"
	"github.com/jalelchniti/smarthub-booking/internal/config"
	adminUserRepo "github.com/jalelchniti/smarthub-booking/internal/infra/storage/adminuser"
	bookingRepo "github.com/jalelchniti/smarthub-booking/internal/infra/storage/booking"
	metaRepo "github.com/jalelchniti/smarthub-booking/internal/infra/storage/meta"
	brevoClient "github.com/jalelchniti/smarthub-booking/internal/integrations/brevo"
	"github.com/jalelchniti/smarthub-booking/internal/notify"
	adminService "github.com/jalelchniti/smarthub-booking/internal/service/admin"
	authService "github.com/jalelchniti/smarthub-booking/internal/service/auth"
	bookingsService "github.com/jalelchniti/smarthub-booking/internal/service/bookings"
	checkAvailabilityUC "github.com/jalelchniti/smarthub-booking/internal/usecase/check_availability"
	createBookingUC "github.com/jalelchniti/smarthub-booking/internal/usecase/create_booking"
	"github.com/jalelchniti/smarthub-booking/pkg/dbmetrics"
	"github.com/jalelchniti/smarthub-booking/pkg/logger"
	"github.com/jalelchniti/smarthub-booking/pkg/metrics"
	"github.com/jalelchniti/smarthub-booking/pkg/simpletxmanager"
	"github.com/jalelchniti/smarthub-booking/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting smarthub-booking...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	leadRelay := brevoClient.NewClient(
		cfg.Brevo.FormURL,
		time.Duration(cfg.Brevo.Timeout)*time.Second,
		log,
	)
	log.Info("Lead relay initialized (url=%s timeout=%ds)", cfg.Brevo.FormURL, cfg.Brevo.Timeout)

	var (
		bookingRepository   *bookingRepo.Repository
		adminUserRepository *adminUserRepo.Repository
		metaRepository      *metaRepo.Repository
	)

	// Transaction manager surface shared by the metric and plain
	// variants.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		adminUserRepository = adminUserRepo.NewRepository(wrappedDB)
		metaRepository = metaRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		adminUserRepository = adminUserRepo.NewRepository(db)
		metaRepository = metaRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	hub := notify.NewHub()

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		metaRepository,
		hub,
		log,
	)
	adminSvc := adminService.NewService(
		bookingRepository,
		metaRepository,
		log,
	)
	authSvc := authService.NewService(
		adminUserRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		metaRepository,
		txMgr,
		bookingSvc,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	listRooms := listRoomsHandler.NewHandler(log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	estimateFees := estimateFeesHandler.NewHandler(log)
	submitLead := submitLeadHandler.NewHandler(leadRelay, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(bookingSvc, log)
	confirmPayment := confirmPaymentHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	bulkDeleteBookings := bulkDeleteBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(adminSvc, log)
	bookingSummary := bookingSummaryHandler.NewHandler(adminSvc, log)
	watchBookings := watchBookingsHandler.NewHandler(bookingSvc, hub, cfg.CORS.AllowedOrigins, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Realtime dashboard feed, outside the /api/v1 prefix.
	r.HandleFunc("/ws/bookings", watchBookings.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// All anonymous POST endpoints share one per-IP token bucket, so an
	// abuser cannot dodge the limit by switching endpoints.
	limitPost := middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)

	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.Handle("/rooms/{roomId}/availability/batch", limitPost(http.HandlerFunc(checkAvailability.HandleBatch))).Methods(http.MethodPost)
	api.Handle("/fees/estimate", limitPost(http.HandlerFunc(estimateFees.Handle))).Methods(http.MethodPost)
	api.Handle("/bookings", limitPost(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.Handle("/admin/login", limitPost(http.HandlerFunc(adminLogin.Handle))).Methods(http.MethodPost)
	api.Handle("/leads", limitPost(http.HandlerFunc(submitLead.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Bearer session token)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.NewAuth(authSvc, log))

	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/bulk-delete", bulkDeleteBookings.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/status", updatePaymentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/payment", confirmPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/summary", bookingSummary.Handle).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

	log.Info("Server exited")
}
