// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rentfolio/backend/config"
	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/auth"
	"github.com/rentfolio/backend/internal/application/usecase/lease"
	"github.com/rentfolio/backend/internal/application/usecase/payment"
	"github.com/rentfolio/backend/internal/application/usecase/revenue"
	"github.com/rentfolio/backend/internal/infra/server/router"
	"github.com/rentfolio/backend/internal/integration/adapters"
	"github.com/rentfolio/backend/internal/integration/email"
	"github.com/rentfolio/backend/internal/integration/email/templates"
	"github.com/rentfolio/backend/internal/integration/entrypoint/controller"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
	"github.com/rentfolio/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; summaries are then recomputed on every request.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	leaseRepo := persistence.NewLeaseRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	gateway := adapters.NewGatewayClient(cfg.Gateway.BaseURL, cfg.Gateway.APIKey, cfg.Gateway.WebhookSecret)
	clock := adapter.SystemClock{}

	var summaryCache revenue.SummaryCache
	if redisClient != nil {
		summaryCache = adapters.NewRedisSummaryCache(redisClient, cfg.Redis.CacheTTL)
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Lease use cases
	createLeaseUseCase := lease.NewCreateLeaseUseCase(leaseRepo, summaryCache)
	listLeasesUseCase := lease.NewListLeasesUseCase(leaseRepo)
	getLeaseUseCase := lease.NewGetLeaseUseCase(leaseRepo)
	updateLeaseUseCase := lease.NewUpdateLeaseUseCase(leaseRepo, summaryCache)
	deleteLeaseUseCase := lease.NewDeleteLeaseUseCase(leaseRepo, summaryCache)

	// Payment use cases
	recordPaymentUseCase := payment.NewRecordPaymentUseCase(paymentRepo, summaryCache)
	listPaymentsUseCase := payment.NewListPaymentsUseCase(paymentRepo)
	createCheckoutUseCase := payment.NewCreateCheckoutUseCase(leaseRepo, paymentRepo, gateway)
	issueRefundUseCase := payment.NewIssueRefundUseCase(paymentRepo, gateway, clock, summaryCache)
	handleWebhookUseCase := payment.NewHandleWebhookUseCase(paymentRepo, gateway, summaryCache)

	// Revenue use cases
	getSummaryUseCase := revenue.NewGetSummaryUseCase(reportRepo, summaryCache, clock)
	queueStatementUseCase := revenue.NewQueueStatementUseCase(getSummaryUseCase, emailQueueRepo, clock)

	// Email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}
	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	leaseController := controller.NewLeaseController(
		createLeaseUseCase,
		listLeasesUseCase,
		getLeaseUseCase,
		updateLeaseUseCase,
		deleteLeaseUseCase,
	)

	paymentController := controller.NewPaymentController(
		recordPaymentUseCase,
		listPaymentsUseCase,
		createCheckoutUseCase,
		issueRefundUseCase,
	)

	revenueController := controller.NewRevenueController(
		getSummaryUseCase,
		queueStatementUseCase,
	)

	webhookController := controller.NewWebhookController(handleWebhookUseCase)

	// Middleware; tests get a high login rate limit to avoid flakes.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		leaseController,
		paymentController,
		revenueController,
		webhookController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
