package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/sbilibin2017/gw-notes/internal/docs"
	"github.com/sbilibin2017/gw-notes/internal/events"
	"github.com/sbilibin2017/gw-notes/internal/handlers"
	"github.com/sbilibin2017/gw-notes/internal/jwt"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/middlewares"
	"github.com/sbilibin2017/gw-notes/internal/passwords"
	"github.com/sbilibin2017/gw-notes/internal/repositories"
	"github.com/sbilibin2017/gw-notes/internal/services"
	"github.com/sbilibin2017/gw-notes/internal/transaction"
	"github.com/sbilibin2017/gw-notes/internal/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-notes API
// @version 1.0.0
// @description Personal notes service with tags and per-user statistics
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp, bcryptCost,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp, bcryptCost,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, JWT, hashing and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int, bcryptCost int,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config, tokens live for 7 days by default
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	// Password hashing
	if bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))); err != nil {
		return
	}

	// Kafka config, publishing is disabled without brokers
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "notes-events")

	return
}

// run initializes the logger, database, event publisher and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int, bcryptCost int,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	// Initialize event publisher
	var writer events.KafkaWriter
	if len(kafkaBrokers) > 0 {
		writer = events.NewKafkaWriter(kafkaBrokers, kafkaTopic)
		logger.Log.Infof("Publishing events to Kafka topic %s", kafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is not set, change events are disabled")
	}
	publisher := events.NewPublisher(writer)
	defer publisher.Close()

	// Initialize credential helpers
	hasher := passwords.New(bcryptCost)
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	statsRepo := repositories.NewUserStatsRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	noteRepo := repositories.NewNoteRepository(db)
	noteTagRepo := repositories.NewNoteTagRepository(db)
	txManager := transaction.NewManager(db)

	// Initialize services
	authService := services.NewAuthService(txManager, userRepo, statsRepo, hasher, tokens, publisher)
	userService := services.NewUserService(userRepo, statsRepo, hasher, publisher)
	tagService := services.NewTagService(txManager, tagRepo, statsRepo, publisher)
	noteService := services.NewNoteService(txManager, noteRepo, noteTagRepo, statsRepo, publisher)
	noteTagService := services.NewNoteTagService(txManager, noteRepo, noteTagRepo, statsRepo, publisher)

	r := newRouter(db, validation.New(), tokens,
		authService, userService, tagService, noteService, noteTagService,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts every endpoint under /api. Registration, login and the
// health check are public, everything else requires a bearer token.
func newRouter(
	db handlers.Pinger,
	validator handlers.RequestValidator,
	tokener middlewares.Tokener,
	auth *services.AuthService,
	users *services.UserService,
	tags *services.TagService,
	notes *services.NoteService,
	noteTags *services.NoteTagService,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(auth, validator))
		r.Post("/auth/login", handlers.NewLoginHandler(auth))
		r.Get("/health", handlers.NewHealthHandler(db))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			r.Get("/auth/me", handlers.NewMeHandler(users))

			r.Get("/users/{user_id}", handlers.NewGetUserHandler(users))
			r.Put("/users/{user_id}", handlers.NewUpdateUserHandler(users))
			r.Delete("/users/{user_id}", handlers.NewDeleteUserHandler(users))
			r.Get("/users/{user_id}/stats", handlers.NewUserStatsHandler(users))

			r.Get("/notes", handlers.NewListNotesHandler(notes))
			r.Post("/notes", handlers.NewCreateNoteHandler(notes))
			r.Get("/notes/{note_id}", handlers.NewGetNoteHandler(notes))
			r.Put("/notes/{note_id}", handlers.NewUpdateNoteHandler(notes))
			r.Delete("/notes/{note_id}", handlers.NewDeleteNoteHandler(notes))
			r.Patch("/notes/{note_id}/status", handlers.NewUpdateNoteStatusHandler(notes))

			r.Get("/notes/{note_id}/tags", handlers.NewNoteTagsHandler(noteTags))
			r.Post("/notes/{note_id}/tags/{tag_id}", handlers.NewAttachTagHandler(noteTags))
			r.Delete("/notes/{note_id}/tags/{tag_id}", handlers.NewDetachTagHandler(noteTags))

			r.Get("/tags", handlers.NewListTagsHandler(tags))
			r.Post("/tags", handlers.NewCreateTagHandler(tags))
			r.Get("/tags/{tag_id}", handlers.NewGetTagHandler(tags))
			r.Put("/tags/{tag_id}", handlers.NewUpdateTagHandler(tags))
			r.Delete("/tags/{tag_id}", handlers.NewDeleteTagHandler(tags))
			r.Get("/tags/{tag_id}/notes", handlers.NewTaggedNotesHandler(noteTags))

			r.Get("/search", handlers.NewSearchHandler(notes))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
