package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	categoryUC "quickdesk/internal/application/category/usecases"
	ticketUC "quickdesk/internal/application/ticket/usecases"
	userUC "quickdesk/internal/application/user/usecases"
	"quickdesk/internal/infrastructure/auth"
	"quickdesk/internal/infrastructure/config"
	"quickdesk/internal/infrastructure/database"
	"quickdesk/internal/infrastructure/email"
	"quickdesk/internal/infrastructure/notification"
	"quickdesk/internal/infrastructure/persistence/migrations"
	"quickdesk/internal/infrastructure/persistence/seeds"
	"quickdesk/internal/infrastructure/ratelimit"
	"quickdesk/internal/infrastructure/repository"
	"quickdesk/internal/infrastructure/storage"
	"quickdesk/internal/interfaces/http/handlers"
	tickethandlers "quickdesk/internal/interfaces/http/handlers/ticket"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/interfaces/http/routes"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the QuickDesk HTTP server with the configured database, redis and SMTP backends.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations and seeds on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := migrations.MigrateAll(database.Get()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		if err := seeds.SeedAll(database.Get()); err != nil {
			return fmt.Errorf("failed to run seeds: %w", err)
		}
		log.Infow("migrations and seeds applied")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	engine := gin.New()
	engine.Use(gin.Recovery())

	if err := setupApplication(engine, cfg, redisClient, log); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func setupApplication(engine *gin.Engine, cfg *config.Config, redisClient *redis.Client, log logger.Interface) error {
	gormDB := database.Get()

	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	attachmentRepo := repository.NewAttachmentRepository(gormDB)
	voteRepo := repository.NewVoteRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)

	loginLimiter := ratelimit.NewRedisRateLimiter(
		redisClient,
		cfg.RateLimit.LoginAttempts,
		time.Duration(cfg.RateLimit.LoginWindowSeconds)*time.Second,
	)

	fileStore, err := storage.NewLocalFileStore(cfg.Storage.UploadDir)
	if err != nil {
		return fmt.Errorf("failed to initialize file storage: %w", err)
	}

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})
	notifier := notification.NewEmailNotifier(emailService, userRepo, log)

	renderer := markdown.NewService()

	authHandler := handlers.NewAuthHandler(
		userUC.NewRegisterUserUseCase(userRepo, hasher, log),
		userUC.NewLoginUseCase(userRepo, hasher, jwtService, loginLimiter, log),
		jwtService,
		log,
	)

	userHandler := handlers.NewUserHandler(
		userUC.NewUpdateUserUseCase(userRepo, log),
		userUC.NewListUsersUseCase(userRepo, log),
		userUC.NewListStaffUseCase(userRepo, log),
		log,
	)

	categoryHandler := handlers.NewCategoryHandler(
		categoryUC.NewCreateCategoryUseCase(categoryRepo, log),
		categoryUC.NewUpdateCategoryUseCase(categoryRepo, log),
		categoryUC.NewListCategoriesUseCase(categoryRepo, log),
		log,
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, attachmentRepo, categoryRepo, fileStore, txManager, notifier, log),
		ticketUC.NewUpdateTicketUseCase(ticketRepo, txManager, notifier, log),
		ticketUC.NewDeleteTicketUseCase(ticketRepo, attachmentRepo, fileStore, txManager, log),
		ticketUC.NewGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, renderer, log),
		ticketUC.NewListTicketsUseCase(ticketRepo, commentRepo, log),
		ticketUC.NewAddCommentUseCase(ticketRepo, commentRepo, txManager, notifier, log),
		ticketUC.NewCastVoteUseCase(ticketRepo, voteRepo, txManager, log),
		ticketUC.NewGetDashboardStatsUseCase(ticketRepo, log),
		ticketUC.NewDownloadAttachmentUseCase(ticketRepo, attachmentRepo, fileStore, log),
		log,
	)

	routes.SetupRoutes(engine, &routes.RouteConfig{
		AuthHandler:     authHandler,
		UserHandler:     userHandler,
		CategoryHandler: categoryHandler,
		TicketHandler:   ticketHandler,
		AuthMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
	})

	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
