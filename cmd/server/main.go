package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/uptrace/bun/migrate"
	ddEcho "gopkg.in/DataDog/dd-trace-go.v1/contrib/labstack/echo.v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/dealerdesk/dealerdesk.go/db"
	"github.com/dealerdesk/dealerdesk.go/db/migrations"
	"github.com/dealerdesk/dealerdesk.go/lib/logging"
	"github.com/dealerdesk/dealerdesk.go/lib/service"
	"github.com/dealerdesk/dealerdesk.go/lib/tokens"
	"github.com/dealerdesk/dealerdesk.go/lib/transport"
	"github.com/dealerdesk/dealerdesk.go/messaging"
	"github.com/dealerdesk/dealerdesk.go/storage"
	"github.com/dealerdesk/dealerdesk.go/storage/memory"
	"github.com/dealerdesk/dealerdesk.go/storage/postgres"
)

func main() {

	c := &service.Config{}

	// Load configuration from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configured log file
	logger := logging.Logger(c.LogFilePath)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), time.Duration(c.DatabaseConnectTimeout+10)*time.Second)
	defer startupCancel()

	// Open a DB connection based on the configured DATABASE_URI. When the
	// database never answers and the fallback is allowed, serve the seeded
	// in-memory fixtures instead so the showroom frontend stays usable.
	var store storage.Store
	dbConn, err := db.OpenWithRetry(startupCtx, c)
	if err == nil {
		migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
		err = migrator.Init(startupCtx)
		if err != nil {
			logger.Fatalf("Error initializing db migrator: %v", err)
		}
		_, err = migrator.Migrate(startupCtx)
		if err != nil {
			logger.Fatalf("Error migrating database: %v", err)
		}
		store = postgres.NewStore(dbConn)
	} else {
		if !c.AllowMemoryFallback {
			logger.Fatalf("Error initializing db connection: %v", err)
		}
		logger.Errorf("Database unreachable, using in-memory data: %v", err)
		memStore := memory.NewStore()
		if err := memStore.Seed(startupCtx); err != nil {
			logger.Fatalf("Error seeding in-memory store: %v", err)
		}
		store = memStore
	}

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			IgnoreErrors:     []string{"401"},
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	// OTP codes go out over WhatsApp when Vonage credentials are present
	var messenger messaging.Messenger
	if c.VonageApiKey != "" && c.VonageApiSecret != "" {
		messenger = messaging.NewVonageMessenger(c.VonageApiKey, c.VonageApiSecret, c.VonageWhatsappNumber)
	} else {
		logger.Info("No Vonage credentials configured, OTP codes will be logged only")
		messenger = &messaging.LogMessenger{Logger: logger}
	}

	svc := &service.DealerdeskService{
		Config:    c,
		Store:     store,
		Logger:    logger,
		Messenger: messenger,
	}

	//init echo server
	e := transport.InitEcho(c, logger)
	//if Datadog is configured, add datadog middleware
	if c.DatadogAgentUrl != "" {
		tracer.Start(tracer.WithAgentAddr(c.DatadogAgentUrl))
		defer tracer.Stop()
		e.Use(ddEcho.Middleware(ddEcho.WithServiceName("dealerdesk.go")))
	}

	logMw := transport.CreateLoggingMiddleware(logger)
	// strict rate limit for the OTP endpoints
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)

	secured := e.Group("", tokens.Middleware(c.JWTSecret), logMw)

	transport.RegisterEndpoints(svc, e, secured, strictRateLimitMiddleware)

	//Start Prometheus server if necessary
	if c.EnablePrometheus {
		go transport.StartPrometheusEcho(logger, c, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	shutdownCtx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	<-shutdownCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	if dbConn != nil {
		dbConn.Close()
	}
	logger.Info("Dealerdesk exiting gracefully. Goodbye.")
}
