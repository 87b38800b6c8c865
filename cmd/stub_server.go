package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/internal/attendance"
	attendancerepo "github.com/frahmantamala/hrms-client/internal/attendance/postgres"
	"github.com/frahmantamala/hrms-client/internal/auth"
	authrepo "github.com/frahmantamala/hrms-client/internal/auth/postgres"
	attendancemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/attendance"
	employeemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/employee"
	leavemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/leave"
	usermodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/user"
	"github.com/frahmantamala/hrms-client/internal/core/events"
	"github.com/frahmantamala/hrms-client/internal/employee"
	employeerepo "github.com/frahmantamala/hrms-client/internal/employee/postgres"
	"github.com/frahmantamala/hrms-client/internal/leave"
	leaverepo "github.com/frahmantamala/hrms-client/internal/leave/postgres"
	"github.com/frahmantamala/hrms-client/internal/transport/rest"
	"github.com/frahmantamala/hrms-client/pkg/logger"
)

var stubServerCmd = &cobra.Command{
	Use:   "stub-server",
	Short: "Start the local development stub backend",
	Long:  `Start an HTTP server implementing the HRMS API contract with local data, for developing the client without a real backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		startStubServer()
	},
}

func startStubServer() {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg)
	lg := logger.L()

	gormDB, sqlxDB, err := initStubDB(cfg.Stub)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	// validate the served contract up front when one is configured
	if cfg.Stub.OpenAPIPath != "" {
		if _, err := rest.LoadOpenAPISpec(context.Background(), cfg.Stub.OpenAPIPath); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid OpenAPI spec: %v\n", err)
			os.Exit(1)
		}
	}

	bus := events.NewEventBus(lg)
	registerAuditLog(bus, lg)

	tokenGen := auth.NewJWTTokenGenerator(cfg.Stub.JWTSecret, cfg.Stub.TokenTTL)
	authService := auth.NewService(authrepo.NewUserRepository(gormDB), tokenGen, cfg.Stub.BCryptCost)
	employeeService := employee.NewService(employeerepo.NewEmployeeRepository(gormDB))
	attendanceService := attendance.NewService(attendancerepo.NewAttendanceRepository(gormDB))
	leaveService := leave.NewService(leaverepo.NewLeaveRepository(gormDB), bus)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, sqlxDB,
		auth.NewHandler(authService),
		employee.NewHandler(employeeService),
		attendance.NewHandler(attendanceService),
		leave.NewHandler(leaveService),
		cfg.Stub.OpenAPIPath,
		lg,
	)

	addr := fmt.Sprintf(":%d", cfg.Stub.Port)
	lg.Info("starting stub server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Stub.ReadHeaderTimeout,
		ReadTimeout:       cfg.Stub.ReadTimeout,
		WriteTimeout:      cfg.Stub.WriteTimeout,
		IdleTimeout:       cfg.Stub.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		lg.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			lg.Error("server shutdown error", "error", err)
		}
		if err := sqlxDB.Close(); err != nil {
			lg.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			lg.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	lg.Info("stub server stopped")
}

// initStubDB opens the stub database, postgres or a local sqlite file, and
// returns both the GORM handle and an sqlx wrapper over the same connection.
func initStubDB(cfg internal.StubConfig) (*gorm.DB, *sqlx.DB, error) {
	source, isPostgres := cfg.DSN()

	var dialector gorm.Dialector
	driverName := "sqlite3"
	if isPostgres {
		dialector = gormpostgres.Open(source)
		driverName = "pgx"
	} else {
		dialector = gormsqlite.Open(source)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite gets its schema automigrated; postgres is managed by goose
	if !isPostgres {
		if err := gormDB.AutoMigrate(
			&usermodel.User{},
			&employeemodel.Employee{},
			&attendancemodel.Record{},
			&leavemodel.Request{},
			&leavemodel.ODRequest{},
			&leavemodel.CCLRequest{},
			&leavemodel.Holiday{},
			&leavemodel.Settings{},
		); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unwrap sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return gormDB, sqlx.NewDb(sqlDB, driverName), nil
}

// registerAuditLog logs every leave lifecycle event, the stub's stand-in for
// a real audit trail.
func registerAuditLog(bus *events.EventBus, lg *slog.Logger) {
	handler := func(ctx context.Context, event events.Event) error {
		lg.Info("audit",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	bus.Subscribe(events.EventTypeLeaveApplied, handler)
	bus.Subscribe(events.EventTypeLeaveActioned, handler)
	bus.Subscribe(events.EventTypeODApplied, handler)
	bus.Subscribe(events.EventTypeODCancelled, handler)
	bus.Subscribe(events.EventTypeCCLApplied, handler)
}
