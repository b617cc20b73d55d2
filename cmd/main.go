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

	createGroupPaymentHandler "github.com/m04kA/SMC-GarageDesk/internal/api/handlers/create_group_payment"
	deleteAppointmentGroupHandler "github.com/m04kA/SMC-GarageDesk/internal/api/handlers/delete_appointment_group"
	getAdminAppointmentsHandler "github.com/m04kA/SMC-GarageDesk/internal/api/handlers/get_admin_appointments"
	getKitBookingsHandler "github.com/m04kA/SMC-GarageDesk/internal/api/handlers/get_kit_bookings"
	getMyAppointmentsHandler "github.com/m04kA/SMC-GarageDesk/internal/api/handlers/get_my_appointments"
	getStatusCommandsHandler "github.com/m04kA/SMC-GarageDesk/internal/api/handlers/get_status_commands"
	liveKitBookingsHandler "github.com/m04kA/SMC-GarageDesk/internal/api/handlers/live_kit_bookings"
	rescheduleAppointmentsHandler "github.com/m04kA/SMC-GarageDesk/internal/api/handlers/reschedule_appointments"
	updateAppointmentGroupStatusHandler "github.com/m04kA/SMC-GarageDesk/internal/api/handlers/update_appointment_group_status"
	updateKitBookingStatusHandler "github.com/m04kA/SMC-GarageDesk/internal/api/handlers/update_kit_booking_status"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/config"
	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/infra/push/stomp"
	"github.com/m04kA/SMC-GarageDesk/internal/infra/storage/commandlog"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/payments"
	"github.com/m04kA/SMC-GarageDesk/internal/service/livestatus"
	changeAppointmentStatusUC "github.com/m04kA/SMC-GarageDesk/internal/usecase/change_appointment_status"
	changeKitStatusUC "github.com/m04kA/SMC-GarageDesk/internal/usecase/change_kit_status"
	payAppointmentGroupUC "github.com/m04kA/SMC-GarageDesk/internal/usecase/pay_appointment_group"
	"github.com/m04kA/SMC-GarageDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageDesk/pkg/logger"
	"github.com/m04kA/SMC-GarageDesk/pkg/metrics"
)

// Размер журнала команд в памяти, когда postgres выключен
const memoryJournalCapacity = 1000

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

	log.Info("Starting SMC-GarageDesk...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал команд: postgres, если включен, иначе в памяти
	type CommandJournal interface {
		Record(ctx context.Context, cmd *domain.StatusCommand) error
		ListRecent(ctx context.Context, kind domain.CommandKind, limit int) ([]domain.StatusCommand, error)
	}
	var journal CommandJournal

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		wrappedDB := dbmetrics.New(db, metricsCollector)

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = wrappedDB.PingContext(pingCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		journal = commandlog.NewRepository(wrappedDB)
	} else {
		journal = commandlog.NewMemoryRepository(memoryJournalCapacity)
		log.Info("Database disabled, status command journal kept in memory (capacity=%d)", memoryJournalCapacity)
	}

	// Инициализируем интеграционных клиентов
	backend := garageapi.NewClient(
		cfg.Backend.AdminURL,
		cfg.Backend.UserURL,
		cfg.BackendTimeout(),
		log,
		metricsCollector,
	)
	log.Info("Backend client initialized (admin=%s, user=%s, timeout=%ds)",
		cfg.Backend.AdminURL, cfg.Backend.UserURL, cfg.Backend.Timeout)

	paymentsClient := payments.NewClient(payments.Config{
		Enabled:    cfg.Payments.Enabled,
		SecretKey:  cfg.Payments.StripeSecretKey,
		Currency:   cfg.Payments.Currency,
		SuccessURL: cfg.Payments.SuccessURL,
		CancelURL:  cfg.Payments.CancelURL,
	}, log)

	// Push-канал статусов: одна подписка на каждое живое представление
	pushTransport := stomp.NewTransport(cfg.Push.URL, cfg.Push.Topic, cfg.Heartbeat(), log)
	synchronizer := livestatus.NewSynchronizer(
		pushTransport,
		log,
		livestatus.WithReconnectDelay(cfg.ReconnectDelay()),
		livestatus.WithMetrics(metricsCollector),
	)
	log.Info("Push channel configured (url=%s, topic=%s, reconnect_delay=%s)",
		cfg.Push.URL, cfg.Push.Topic, cfg.ReconnectDelay())

	// Инициализируем use cases
	changeAppointmentStatusUseCase := changeAppointmentStatusUC.NewUseCase(
		backend,
		journal,
		metricsCollector,
		log,
		changeAppointmentStatusUC.Options{
			MaxParallel: cfg.Commands.MaxParallel,
			Compensate:  cfg.Commands.Compensate,
		},
	)
	changeKitStatusUseCase := changeKitStatusUC.NewUseCase(backend, journal, metricsCollector, log)
	payAppointmentGroupUseCase := payAppointmentGroupUC.NewUseCase(backend, paymentsClient, log)

	// Инициализируем handlers
	getAdminAppointments := getAdminAppointmentsHandler.NewHandler(backend, log)
	updateAppointmentGroupStatus := updateAppointmentGroupStatusHandler.NewHandler(changeAppointmentStatusUseCase, log)
	getAdminKitBookings := getKitBookingsHandler.NewHandler(backend, domain.RoleAdmin, log)
	updateKitBookingStatus := updateKitBookingStatusHandler.NewHandler(changeKitStatusUseCase, log)
	liveAdminKitBookings := liveKitBookingsHandler.NewHandler(liveKitBookingsHandler.Config{
		Role:           domain.RoleAdmin,
		Client:         backend,
		Subscriber:     synchronizer,
		UseCase:        changeKitStatusUseCase,
		Metrics:        metricsCollector,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         log,
	})
	getStatusCommands := getStatusCommandsHandler.NewHandler(journal, log)

	getMyAppointments := getMyAppointmentsHandler.NewHandler(backend, log)
	rescheduleAppointments := rescheduleAppointmentsHandler.NewHandler(backend, log)
	deleteAppointmentGroup := deleteAppointmentGroupHandler.NewHandler(backend, log)
	createGroupPayment := createGroupPaymentHandler.NewHandler(payAppointmentGroupUseCase, log)
	getMyKitBookings := getKitBookingsHandler.NewHandler(backend, domain.RoleCustomer, log)
	liveMyKitBookings := liveKitBookingsHandler.NewHandler(liveKitBookingsHandler.Config{
		Role:           domain.RoleCustomer,
		Client:         backend,
		Subscriber:     synchronizer,
		Metrics:        metricsCollector,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         log,
	})

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.ForwardCookies)

	// ============================================================
	// ADMIN ROUTES (сессия администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.SessionGate(backend, domain.RoleAdmin, cfg.Server.AdminLoginPath, log))

	// --- Записи на обслуживание ---
	admin.HandleFunc("/appointments", getAdminAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/status", updateAppointmentGroupStatus.Handle).Methods(http.MethodPut)

	// --- Бронирования комплектов ---
	admin.HandleFunc("/kit-bookings", getAdminKitBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/kit-bookings/live", liveAdminKitBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/kit-bookings/{bookingId}/status", updateKitBookingStatus.Handle).Methods(http.MethodPut)

	// --- Журнал команд ---
	admin.HandleFunc("/status-commands", getStatusCommands.Handle).Methods(http.MethodGet)

	// ============================================================
	// CUSTOMER ROUTES (сессия клиента)
	// ============================================================

	me := api.PathPrefix("/me").Subrouter()
	me.Use(middleware.SessionGate(backend, domain.RoleCustomer, cfg.Server.UserLoginPath, log))

	me.HandleFunc("/appointments", getMyAppointments.Handle).Methods(http.MethodGet)
	me.HandleFunc("/cars/{carId}/appointments", rescheduleAppointments.Handle).Methods(http.MethodPut)
	me.HandleFunc("/appointments/groups/{groupId}", deleteAppointmentGroup.Handle).Methods(http.MethodDelete)
	me.HandleFunc("/appointments/groups/{groupId}/payment", createGroupPayment.Handle).Methods(http.MethodPost)
	me.HandleFunc("/kit-bookings", getMyKitBookings.Handle).Methods(http.MethodGet)
	me.HandleFunc("/kit-bookings/live", liveMyKitBookings.Handle).Methods(http.MethodGet)

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

	// Живые представления работают на hijacked соединениях, Shutdown их не ждет
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
