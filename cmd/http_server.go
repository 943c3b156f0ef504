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

	"github.com/frahmantamala/hr-assistant/internal"
	"github.com/frahmantamala/hr-assistant/internal/assistant"
	assistantPostgres "github.com/frahmantamala/hr-assistant/internal/assistant/postgres"
	"github.com/frahmantamala/hr-assistant/internal/auth"
	"github.com/frahmantamala/hr-assistant/internal/core/events"
	"github.com/frahmantamala/hr-assistant/internal/employee"
	employeePostgres "github.com/frahmantamala/hr-assistant/internal/employee/postgres"
	"github.com/frahmantamala/hr-assistant/internal/hrrequest"
	requestPostgres "github.com/frahmantamala/hr-assistant/internal/hrrequest/postgres"
	"github.com/frahmantamala/hr-assistant/internal/llm"
	"github.com/frahmantamala/hr-assistant/internal/policy"
	policyPostgres "github.com/frahmantamala/hr-assistant/internal/policy/postgres"
	"github.com/frahmantamala/hr-assistant/internal/transport"
	"github.com/frahmantamala/hr-assistant/internal/transport/rest"
	"github.com/frahmantamala/hr-assistant/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Env)
	log := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// gorm rides on the already-open pgx connection pool
	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	eventBus := events.NewEventBus(log)
	subscribeEventLogging(eventBus, log)

	baseHandler := transport.NewBaseHandler(log)

	// repositories
	employeeRepo := employeePostgres.NewEmployeeRepository(gormDB)
	balanceRepo := employeePostgres.NewBalanceRepository(gormDB)
	salaryRepo := employeePostgres.NewSalaryRepository(gormDB)
	requestRepo := requestPostgres.NewRequestRepository(gormDB)
	policyRepo := policyPostgres.NewPolicyRepository(gormDB)
	chatRepo := assistantPostgres.NewChatRepository(gormDB)

	// services
	employeeService := employee.NewService(employeeRepo, balanceRepo, salaryRepo, log)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(employeeRepo, tokenGen, config.Security.BCryptCost)

	requestService := hrrequest.NewService(requestRepo, employeeService, eventBus, log)
	policyService := policy.NewService(policyRepo, log)

	provider, err := llm.NewOpenAIProvider(llm.OpenAIConfig{
		APIKey:  config.Assistant.APIKey,
		Model:   config.Assistant.Model,
		BaseURL: config.Assistant.BaseURL,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize llm provider: %w", err)
	}

	contextBuilder := assistant.NewContextBuilder(balanceRepo, requestRepo, salaryRepo, log)
	knowledge := assistant.NewKnowledgeAggregator(policyRepo, log)
	fallback := assistant.NewFallback(policyRepo, balanceRepo, log)
	assistantService := assistant.NewService(
		employeeRepo,
		chatRepo,
		contextBuilder,
		knowledge,
		fallback,
		provider,
		config.Assistant,
		eventBus,
		log,
	)

	// handlers
	authHandler := auth.NewHandler(baseHandler, authService)
	employeeHandler := employee.NewHandler(baseHandler, employeeService)
	requestHandler := hrrequest.NewHandler(baseHandler, requestService)
	policyHandler := policy.NewHandler(baseHandler, policyService)
	assistantHandler := assistant.NewHandler(baseHandler, assistantService)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(
		router,
		db.DB,
		authHandler,
		employeeHandler,
		requestHandler,
		policyHandler,
		assistantHandler,
		log,
	)

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		Router: router,
	}, nil
}

// subscribeEventLogging attaches the audit log handlers; degraded chat turns
// are the main operational signal for provider health.
func subscribeEventLogging(bus *events.EventBus, log *slog.Logger) {
	bus.Subscribe(events.EventTypeChatTurnRecorded, func(ctx context.Context, event events.Event) error {
		payload, ok := event.Payload().(map[string]interface{})
		if !ok {
			return nil
		}
		if degraded, ok := payload["degraded"].(bool); ok && degraded {
			log.Warn("chat turn answered by fallback",
				"employee_id", payload["employee_id"],
				"session_id", payload["session_id"])
		}
		return nil
	})

	bus.Subscribe(events.EventTypeRequestDecided, func(ctx context.Context, event events.Event) error {
		payload, ok := event.Payload().(map[string]interface{})
		if !ok {
			return nil
		}
		log.Info("hr request decided",
			"request_id", payload["request_id"],
			"status", payload["status"],
			"decided_by", payload["decided_by"])
		return nil
	})
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
