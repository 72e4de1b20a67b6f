package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/ladypant/store-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/ladypant/store-booking-service/internal/api/handlers/create_booking"
	getAllBookingsHandler "github.com/ladypant/store-booking-service/internal/api/handlers/get_all_bookings"
	getCalendarHandler "github.com/ladypant/store-booking-service/internal/api/handlers/get_calendar"
	getClientBookingsHandler "github.com/ladypant/store-booking-service/internal/api/handlers/get_client_bookings"
	getDayAvailabilityHandler "github.com/ladypant/store-booking-service/internal/api/handlers/get_day_availability"
	"github.com/ladypant/store-booking-service/internal/api/middleware"
	"github.com/ladypant/store-booking-service/internal/config"
	"github.com/ladypant/store-booking-service/internal/domain"
	bookingRepo "github.com/ladypant/store-booking-service/internal/infra/storage/booking"
	"github.com/ladypant/store-booking-service/internal/integrations/emailjs"
	bookingsService "github.com/ladypant/store-booking-service/internal/service/bookings"
	createBookingUC "github.com/ladypant/store-booking-service/internal/usecase/create_booking"
	getDayAvailabilityUC "github.com/ladypant/store-booking-service/internal/usecase/get_day_availability"
	"github.com/ladypant/store-booking-service/pkg/logger"
	"github.com/ladypant/store-booking-service/pkg/metrics"
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

	log.Info("Starting store-booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Booking rules for this store location
	closedWeekday, err := cfg.Booking.ClosedWeekdayValue()
	if err != nil {
		log.Fatal("Invalid booking configuration: %v", err)
	}
	rules := domain.Rules{
		SlotCatalog:   cfg.Booking.Slots,
		DailyItemCap:  cfg.Booking.DailyItemCap,
		CappedSlot:    cfg.Booking.CappedSlot,
		CappedSlotCap: cfg.Booking.CappedSlotCap,
		ClosedWeekday: closedWeekday,
	}
	log.Info("Booking rules loaded: %d slots, daily cap %d, %s cap %d, closed on %s",
		len(rules.SlotCatalog), rules.DailyItemCap, rules.CappedSlot, rules.CappedSlotCap, rules.ClosedWeekday)

	// Booking store with its snapshot file
	store := bookingRepo.NewRepository(cfg.Storage.File, log)
	log.Info("Booking store initialized (snapshot=%s)", cfg.Storage.File)

	// Confirmation email client
	notifier := emailjs.NewClient(emailjs.Config{
		Enabled:    cfg.EmailJS.Enabled,
		BaseURL:    cfg.EmailJS.BaseURL,
		ServiceID:  cfg.EmailJS.ServiceID,
		TemplateID: cfg.EmailJS.TemplateID,
		PublicKey:  cfg.EmailJS.PublicKey,
		Timeout:    time.Duration(cfg.EmailJS.Timeout) * time.Second,
	}, notificationRecorder(metricsCollector), log)
	log.Info("EmailJS client initialized (enabled=%t, timeout=%ds)", cfg.EmailJS.Enabled, cfg.EmailJS.Timeout)

	// Services and use cases
	bookingSvc := bookingsService.NewService(store, rules, log)
	createBookingUseCase := createBookingUC.NewUseCase(store, notifier, rules, log)
	getDayAvailabilityUseCase := getDayAvailabilityUC.NewUseCase(store, rules, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getDayAvailability := getDayAvailabilityHandler.NewHandler(getDayAvailabilityUseCase, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	getCalendar := getCalendarHandler.NewHandler(bookingSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Client booking flow
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getClientBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/availability", getDayAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Staff screens
	api.HandleFunc("/admin/bookings", getAllBookings.Handle).Methods(http.MethodGet)

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

// notificationRecorder adapts an optional metrics collector for the email client
func notificationRecorder(m *metrics.Metrics) emailjs.MetricsRecorder {
	if m == nil {
		return nil
	}
	return m
}
