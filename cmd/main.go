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

	"github.com/courtline/CourtBookingService/internal/access"
	bookingsReportHandler "github.com/courtline/CourtBookingService/internal/api/handlers/bookings_report"
	cancelBookingHandler "github.com/courtline/CourtBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/courtline/CourtBookingService/internal/api/handlers/create_booking"
	createCourtHandler "github.com/courtline/CourtBookingService/internal/api/handlers/create_court"
	customersHandler "github.com/courtline/CourtBookingService/internal/api/handlers/customers"
	deactivateCourtHandler "github.com/courtline/CourtBookingService/internal/api/handlers/deactivate_court"
	deleteBookingHandler "github.com/courtline/CourtBookingService/internal/api/handlers/delete_booking"
	employeesHandler "github.com/courtline/CourtBookingService/internal/api/handlers/employees"
	getBookingHandler "github.com/courtline/CourtBookingService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/courtline/CourtBookingService/internal/api/handlers/list_bookings"
	listCourtsHandler "github.com/courtline/CourtBookingService/internal/api/handlers/list_courts"
	payrollReportHandler "github.com/courtline/CourtBookingService/internal/api/handlers/payroll_report"
	recordPaymentHandler "github.com/courtline/CourtBookingService/internal/api/handlers/record_payment"
	timeclockHandler "github.com/courtline/CourtBookingService/internal/api/handlers/timeclock"
	updateBookingHandler "github.com/courtline/CourtBookingService/internal/api/handlers/update_booking"
	updateCourtHandler "github.com/courtline/CourtBookingService/internal/api/handlers/update_court"
	workSchedulesHandler "github.com/courtline/CourtBookingService/internal/api/handlers/work_schedules"
	"github.com/courtline/CourtBookingService/internal/api/middleware"
	"github.com/courtline/CourtBookingService/internal/config"
	bookingRepo "github.com/courtline/CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/courtline/CourtBookingService/internal/infra/storage/court"
	customerRepo "github.com/courtline/CourtBookingService/internal/infra/storage/customer"
	employeeRepo "github.com/courtline/CourtBookingService/internal/infra/storage/employee"
	paymentRepo "github.com/courtline/CourtBookingService/internal/infra/storage/payment"
	timeentryRepo "github.com/courtline/CourtBookingService/internal/infra/storage/timeentry"
	workscheduleRepo "github.com/courtline/CourtBookingService/internal/infra/storage/workschedule"
	"github.com/courtline/CourtBookingService/internal/integrations/notifyservice"
	"github.com/courtline/CourtBookingService/internal/lock"
	"github.com/courtline/CourtBookingService/internal/scheduler"
	bookingsService "github.com/courtline/CourtBookingService/internal/service/bookings"
	courtsService "github.com/courtline/CourtBookingService/internal/service/courts"
	customersService "github.com/courtline/CourtBookingService/internal/service/customers"
	employeesService "github.com/courtline/CourtBookingService/internal/service/employees"
	paymentsService "github.com/courtline/CourtBookingService/internal/service/payments"
	reportsService "github.com/courtline/CourtBookingService/internal/service/reports"
	timesheetService "github.com/courtline/CourtBookingService/internal/service/timesheet"
	createBookingUC "github.com/courtline/CourtBookingService/internal/usecase/create_booking"
	sweepStatusesUC "github.com/courtline/CourtBookingService/internal/usecase/sweep_statuses"
	updateBookingUC "github.com/courtline/CourtBookingService/internal/usecase/update_booking"
	"github.com/courtline/CourtBookingService/pkg/dbmetrics"
	"github.com/courtline/CourtBookingService/pkg/logger"
	"github.com/courtline/CourtBookingService/pkg/metrics"
	"github.com/courtline/CourtBookingService/pkg/simpletxmanager"
	"github.com/courtline/CourtBookingService/pkg/txmanager"
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

	log.Info("Starting CourtBookingService...")

	var metricsCollector *metrics.Metrics
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

	// Optional per-court Redis lock in front of the serializable
	// transaction; NopLocker when Redis is disabled.
	var locker interface {
		Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
		Unlock(ctx context.Context, key string) error
	}
	if cfg.Redis.Enabled {
		redisLock, err := lock.NewRedisLock(cfg.Redis.Addr)
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		locker = redisLock
		log.Info("Redis court lock enabled (addr=%s)", cfg.Redis.Addr)
	} else {
		locker = lock.NopLocker{}
	}
	lockTTL := time.Duration(cfg.Redis.LockTTL) * time.Second
	lockWait := time.Duration(cfg.Redis.LockTimeout) * time.Second

	var notifyClient sweepStatusesUC.NotifyClient
	if cfg.NotifyService.Enabled {
		notifyClient = notifyservice.NewClient(
			cfg.NotifyService.URL,
			time.Duration(cfg.NotifyService.Timeout)*time.Second,
			log,
		)
		log.Info("Notification client initialized (url=%s)", cfg.NotifyService.URL)
	} else {
		notifyClient = notifyservice.NopClient{}
	}

	// Repositories share one executor; with metrics enabled every query
	// goes through the instrumented wrapper.
	var (
		executor dbmetrics.DBExecutor = db
		txMgr    interface {
			Do(ctx context.Context, fn func(ctx context.Context) error) error
			DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		}
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	courtRepository := courtRepo.NewRepository(executor)
	customerRepository := customerRepo.NewRepository(executor)
	employeeRepository := employeeRepo.NewRepository(executor)
	paymentRepository := paymentRepo.NewRepository(executor)
	timeEntryRepository := timeentryRepo.NewRepository(executor)
	workScheduleRepository := workscheduleRepo.NewRepository(executor)

	// Services
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		customerRepository,
		&bookingsService.RealTimeProvider{},
		log,
	)
	courtSvc := courtsService.NewService(courtRepository, log)
	customerSvc := customersService.NewService(
		customerRepository,
		&customersService.RealTimeProvider{},
		log,
	)
	employeeSvc := employeesService.NewService(
		employeeRepository,
		&employeesService.RealTimeProvider{},
		log,
	)
	paymentSvc := paymentsService.NewService(bookingRepository, paymentRepository, txMgr, log)
	timesheetSvc := timesheetService.NewService(
		timeEntryRepository,
		employeeRepository,
		workScheduleRepository,
		&timesheetService.RealTimeProvider{},
		log,
	)
	reportSvc := reportsService.NewService(bookingRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		customerRepository,
		txMgr,
		locker,
		lockTTL,
		lockWait,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		customerRepository,
		txMgr,
		locker,
		lockTTL,
		lockWait,
		log,
	)
	sweepUseCase := sweepStatusesUC.NewUseCase(
		bookingRepository,
		courtRepository,
		notifyClient,
		&sweepStatusesUC.RealTimeProvider{},
		time.Duration(cfg.Scheduler.EndingNoticeMinutes)*time.Minute,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	deactivateCourt := deactivateCourtHandler.NewHandler(courtSvc, log)
	customers := customersHandler.NewHandler(customerSvc, log)
	employees := employeesHandler.NewHandler(employeeSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(paymentSvc, log)
	timeclock := timeclockHandler.NewHandler(timesheetSvc, log)
	payrollReport := payrollReportHandler.NewHandler(timesheetSvc, log)
	workSchedules := workSchedulesHandler.NewHandler(timesheetSvc, log)
	bookingsReport := bookingsReportHandler.NewHandler(reportSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	auth := middleware.NewAuth(cfg.Auth.JWTSecret, cfg.Auth.AllowHeaderIdentity, log)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Middleware)

	perm := middleware.RequirePermission

	// Bookings
	protected.Handle("/bookings",
		perm(access.ActionCreateBooking)(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)
	protected.Handle("/bookings",
		perm(access.ActionViewBookings)(http.HandlerFunc(listBookings.Handle))).Methods(http.MethodGet)
	protected.Handle("/bookings/{id}",
		perm(access.ActionViewBookings)(http.HandlerFunc(getBooking.Handle))).Methods(http.MethodGet)
	protected.Handle("/bookings/{id}",
		perm(access.ActionUpdateBooking)(http.HandlerFunc(updateBooking.Handle))).Methods(http.MethodPut)
	protected.Handle("/bookings/{id}/cancel",
		perm(access.ActionCancelBooking)(http.HandlerFunc(cancelBooking.Handle))).Methods(http.MethodPost)
	protected.Handle("/bookings/{id}",
		perm(access.ActionDeleteBooking)(http.HandlerFunc(deleteBooking.Handle))).Methods(http.MethodDelete)

	// Payments
	protected.Handle("/bookings/{id}/payments",
		perm(access.ActionRecordPayment)(http.HandlerFunc(recordPayment.HandleRecord))).Methods(http.MethodPost)
	protected.Handle("/bookings/{id}/payments",
		perm(access.ActionRecordPayment)(http.HandlerFunc(recordPayment.HandleList))).Methods(http.MethodGet)

	// Courts
	protected.Handle("/courts",
		perm(access.ActionViewCourts)(http.HandlerFunc(listCourts.HandleList))).Methods(http.MethodGet)
	protected.Handle("/courts/{id}",
		perm(access.ActionViewCourts)(http.HandlerFunc(listCourts.HandleGet))).Methods(http.MethodGet)
	protected.Handle("/courts",
		perm(access.ActionManageCourts)(http.HandlerFunc(createCourt.Handle))).Methods(http.MethodPost)
	protected.Handle("/courts/{id}",
		perm(access.ActionManageCourts)(http.HandlerFunc(updateCourt.Handle))).Methods(http.MethodPut)
	protected.Handle("/courts/{id}",
		perm(access.ActionManageCourts)(http.HandlerFunc(deactivateCourt.Handle))).Methods(http.MethodDelete)

	// Customers and employees
	protected.Handle("/customers",
		perm(access.ActionManageCustomers)(http.HandlerFunc(customers.HandleCreate))).Methods(http.MethodPost)
	protected.Handle("/customers",
		perm(access.ActionViewCustomers)(http.HandlerFunc(customers.HandleList))).Methods(http.MethodGet)
	protected.Handle("/customers/{id}",
		perm(access.ActionViewCustomers)(http.HandlerFunc(customers.HandleGet))).Methods(http.MethodGet)
	protected.Handle("/employees",
		perm(access.ActionManageEmployees)(http.HandlerFunc(employees.HandleCreate))).Methods(http.MethodPost)
	protected.Handle("/employees",
		perm(access.ActionViewEmployees)(http.HandlerFunc(employees.HandleList))).Methods(http.MethodGet)
	protected.Handle("/employees/{id}",
		perm(access.ActionViewEmployees)(http.HandlerFunc(employees.HandleGet))).Methods(http.MethodGet)

	// Staff time clock, schedules and reports
	protected.Handle("/timeclock/in",
		perm(access.ActionUseTimeClock)(http.HandlerFunc(timeclock.HandleClockIn))).Methods(http.MethodPost)
	protected.Handle("/timeclock/out",
		perm(access.ActionUseTimeClock)(http.HandlerFunc(timeclock.HandleClockOut))).Methods(http.MethodPost)
	protected.Handle("/schedules",
		perm(access.ActionManageSchedules)(http.HandlerFunc(workSchedules.HandleCreate))).Methods(http.MethodPost)
	protected.Handle("/schedules",
		perm(access.ActionManageSchedules)(http.HandlerFunc(workSchedules.HandleList))).Methods(http.MethodGet)
	protected.Handle("/reports/payroll",
		perm(access.ActionViewPayroll)(http.HandlerFunc(payrollReport.Handle))).Methods(http.MethodGet)
	protected.Handle("/reports/bookings",
		perm(access.ActionViewReports)(http.HandlerFunc(bookingsReport.Handle))).Methods(http.MethodGet)

	// Background status sweep
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	sched := scheduler.New(
		sweepUseCase,
		time.Duration(cfg.Scheduler.SweepIntervalSeconds)*time.Second,
		cfg.Metrics.ServiceName,
		sweepObserver(metricsCollector),
		log,
	)
	go sched.Run(sweepCtx)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	stopSweep()
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

// sweepObserver passes nil through so the scheduler skips metrics when
// they are disabled.
func sweepObserver(m *metrics.Metrics) scheduler.SweepObserver {
	if m == nil {
		return nil
	}
	return m
}
