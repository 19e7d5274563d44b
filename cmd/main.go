package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/pregnancy-care/docs"
	"github.com/sbilibin2017/pregnancy-care/internal/config"
	"github.com/sbilibin2017/pregnancy-care/internal/handlers"
	"github.com/sbilibin2017/pregnancy-care/internal/jwt"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/mailer"
	"github.com/sbilibin2017/pregnancy-care/internal/middlewares"
	"github.com/sbilibin2017/pregnancy-care/internal/migrations"
	"github.com/sbilibin2017/pregnancy-care/internal/repositories"
	"github.com/sbilibin2017/pregnancy-care/internal/services"
	"github.com/sbilibin2017/pregnancy-care/internal/storage"
	"github.com/sbilibin2017/pregnancy-care/internal/validators"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// fileStore is implemented by both upload backends.
type fileStore interface {
	services.FileStorage
	handlers.FileOpener
}

// @title pregnancy-care API
// @version 1.0.0
// @description Accounts, profiles, doctor appointments and a tips chat for expecting mothers
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session_id
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// newFileStore picks the upload backend named by cfg.UploadStorage.
func newFileStore(ctx context.Context, cfg *config.Config) (fileStore, error) {
	if cfg.UploadStorage != config.StorageS3 {
		return storage.NewLocalStorage(cfg.UploadDir)
	}
	client, err := storage.NewS3Client(ctx, storage.S3Config{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		Bucket:    cfg.S3Bucket,
		Prefix:    cfg.S3Prefix,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		return nil, err
	}
	return storage.NewS3Storage(client, cfg.S3Bucket, cfg.S3Prefix), nil
}

// run initializes the logger, database, Redis, upload storage, mail, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Upload storage
	files, err := newFileStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("upload storage error: %w", err)
	}
	log.Infow("Upload storage ready", "backend", cfg.UploadStorage)

	// Kafka is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		log.Infow("Kafka writer configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	resetTokens := jwt.New(jwt.WithSecretKey(cfg.ResetTokenSecret))
	phone := validators.NewPhoneValidator(cfg.PhoneRegion)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	sessionRepo := repositories.NewSessionRedisRepository(rdb, cfg.SessionTTL)
	doctorReadRepo := repositories.NewDoctorReadRepository(db)
	appointmentWriteRepo := repositories.NewAppointmentWriteRepository(db)
	appointmentReadRepo := repositories.NewAppointmentReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionRepo)
	resetService := services.NewPasswordResetService(userReadRepo, userWriteRepo, resetTokens, mail, cfg.BaseURL, cfg.ResetTokenMaxAge)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, phone, files,
		services.WithMaxUploadBytes(cfg.UploadMaxBytes),
	)
	appointmentService := services.NewAppointmentService(doctorReadRepo, appointmentWriteRepo, appointmentReadRepo, kafkaWriter)
	chatHelper := services.NewChatHelper()

	cookie := handlers.SessionCookie{
		Name:   cfg.SessionCookieName,
		TTL:    cfg.SessionTTL,
		Secure: cfg.SessionSecure,
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middlewares.NewMetrics(registry)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(metrics.Middleware)
	r.Use(middlewares.SessionMiddleware(authService, cfg.SessionCookieName))

	// Public routes
	r.Get("/", handlers.NewIndexHandler(authService))
	r.With(middlewares.TxMiddleware(db)).Post("/signup", handlers.NewSignupHandler(authService, cookie))
	r.Post("/login", handlers.NewLoginHandler(authService, cookie))
	r.Post("/logout", handlers.NewLogoutHandler(authService, cookie))
	r.Post("/forgot_password", handlers.NewForgotPasswordHandler(resetService))
	r.Get("/reset_password/{token}", handlers.NewCheckResetTokenHandler(resetService))
	r.Post("/reset_password/{token}", handlers.NewResetPasswordHandler(resetService))
	r.Get("/uploads/{name}", handlers.NewUploadsHandler(files))
	r.Get("/doctors", handlers.NewDoctorsHandler(appointmentService))
	r.Post("/schedule_appointment/{doctorID}", handlers.NewScheduleAppointmentHandler(appointmentService))
	r.Post("/confirm_appointment", handlers.NewConfirmAppointmentHandler(appointmentService))
	r.Post("/chat", handlers.NewChatHandler(chatHelper))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAuth("Please log in to view your profile."))
		r.Get("/profile", handlers.NewProfileHandler(profileService))
		r.Post("/edit_profile", handlers.NewEditProfileHandler(profileService))
		r.Post("/upload_profile_picture", handlers.NewUploadProfilePictureHandler(profileService, cfg.UploadMaxBytes))
	})
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAuth("Please log in to view your appointments."))
		r.Get("/appointments", handlers.NewListAppointmentsHandler(appointmentService))
		r.Get("/appointments/{appointmentID}", handlers.NewGetAppointmentHandler(appointmentService))
	})

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	docs.SwaggerInfo.Host = cfg.HTTPAddr()
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.BaseURL+"/swagger/doc.json"),
	))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
