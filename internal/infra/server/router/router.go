// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rentfolio/backend/internal/integration/entrypoint/controller"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	leaseController   *controller.LeaseController
	paymentController *controller.PaymentController
	revenueController *controller.RevenueController
	webhookController *controller.WebhookController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	leaseController *controller.LeaseController,
	paymentController *controller.PaymentController,
	revenueController *controller.RevenueController,
	webhookController *controller.WebhookController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		leaseController:   leaseController,
		paymentController: paymentController,
		revenueController: revenueController,
		webhookController: webhookController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Lease routes; writes require the admin role.
		if r.leaseController != nil && r.authMiddleware != nil {
			leases := v1.Group("/leases")
			leases.Use(r.authMiddleware.Authenticate())
			{
				leases.GET("", r.leaseController.List)
				leases.GET("/:id", r.leaseController.Get)
				leases.POST("", r.authMiddleware.RequireAdmin(), r.leaseController.Create)
				leases.PUT("/:id", r.authMiddleware.RequireAdmin(), r.leaseController.Update)
				leases.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.leaseController.Delete)
			}
		}

		// Payment routes; writes require the admin role.
		if r.paymentController != nil && r.authMiddleware != nil {
			payments := v1.Group("/payments")
			payments.Use(r.authMiddleware.Authenticate())
			{
				payments.GET("", r.paymentController.List)
				payments.POST("", r.authMiddleware.RequireAdmin(), r.paymentController.Record)
				payments.POST("/checkout", r.authMiddleware.RequireAdmin(), r.paymentController.CreateCheckout)
				payments.POST("/:id/refund", r.authMiddleware.RequireAdmin(), r.paymentController.Refund)
			}
		}

		// Revenue reporting routes
		if r.revenueController != nil && r.authMiddleware != nil {
			revenue := v1.Group("/revenue")
			revenue.Use(r.authMiddleware.Authenticate())
			{
				revenue.GET("/summary", r.revenueController.Summary)
				revenue.GET("/export", r.revenueController.Export)
				revenue.POST("/statements", r.authMiddleware.RequireAdmin(), r.revenueController.QueueStatement)
			}
		}

		// Gateway webhooks authenticate by signature, not JWT.
		if r.webhookController != nil {
			v1.POST("/webhooks/gateway", r.webhookController.HandleGatewayEvent)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
