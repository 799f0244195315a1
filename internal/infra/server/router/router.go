// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/betting-platform/backend/internal/integration/entrypoint/controller"
	"github.com/betting-platform/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	userController    *controller.UserController
	gameController    *controller.GameController
	matchController   *controller.MatchController
	ticketController  *controller.TicketController
	prizeController   *controller.PrizeController
	balanceController *controller.BalanceController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	gameController *controller.GameController,
	matchController *controller.MatchController,
	ticketController *controller.TicketController,
	prizeController *controller.PrizeController,
	balanceController *controller.BalanceController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		userController:    userController,
		gameController:    gameController,
		matchController:   matchController,
		ticketController:  ticketController,
		prizeController:   prizeController,
		balanceController: balanceController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAuthRoutes()
	r.setupUserRoutes()
	r.setupEntityRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAuthRoutes configures the authentication endpoints.
func (r *Router) setupAuthRoutes() {
	if r.authController == nil || r.loginRateLimiter == nil {
		return
	}

	auth := r.engine.Group("/auth")
	{
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/registro", r.authController.Register)
		auth.POST("/crear-admin", r.authController.CreateAdmin)
		auth.GET("/verificar/:id", r.authController.Verify)
		auth.GET("/estado", r.authController.Status)
	}
}

// setupUserRoutes configures the user account endpoints. Only the admin
// listing requires a token; the rest of the surface is open like the
// entity CRUD routes.
func (r *Router) setupUserRoutes() {
	if r.userController == nil {
		return
	}

	users := r.engine.Group("/usuarios")
	{
		users.GET("", r.userController.List)
		users.POST("", r.userController.Create)
		users.GET("/:id", r.userController.GetByID)
		users.GET("/:id/es-admin", r.userController.IsAdmin)
		users.GET("/email/:email", r.userController.GetByEmail)
		users.GET("/username/:nombre_usuario", r.userController.GetByUsername)
		users.PUT("/:id", r.userController.Update)
		users.DELETE("/:id", r.userController.Delete)
		users.PATCH("/:id/desactivar", r.userController.Deactivate)
		users.POST("/:id/cambiar-contrasena", r.userController.ChangePassword)

		if r.authMiddleware != nil {
			users.GET("/admin/lista",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireAdmin(),
				r.userController.ListAdmins,
			)
		}
	}
}

// setupEntityRoutes configures the CRUD endpoints for games, matches,
// tickets, prizes and the balance ledger.
func (r *Router) setupEntityRoutes() {
	if r.gameController != nil {
		games := r.engine.Group("/juegos")
		{
			games.GET("", r.gameController.List)
			games.POST("", r.gameController.Create)
			games.GET("/:id", r.gameController.Get)
			games.PUT("/:id", r.gameController.Update)
			games.DELETE("/:id", r.gameController.Delete)
		}
	}

	if r.matchController != nil {
		matches := r.engine.Group("/partidas")
		{
			matches.GET("", r.matchController.List)
			matches.POST("", r.matchController.Create)
			matches.GET("/:id", r.matchController.Get)
			matches.PUT("/:id", r.matchController.Update)
			matches.DELETE("/:id", r.matchController.Delete)
		}
	}

	if r.ticketController != nil {
		tickets := r.engine.Group("/boletos")
		{
			tickets.GET("", r.ticketController.List)
			tickets.POST("", r.ticketController.Create)
			tickets.GET("/:id", r.ticketController.Get)
			tickets.PUT("/:id", r.ticketController.Update)
			tickets.DELETE("/:id", r.ticketController.Delete)
		}
	}

	if r.prizeController != nil {
		prizes := r.engine.Group("/premios")
		{
			prizes.GET("", r.prizeController.List)
			prizes.POST("", r.prizeController.Create)
			prizes.GET("/:id", r.prizeController.Get)
			prizes.PUT("/:id", r.prizeController.Update)
			prizes.DELETE("/:id", r.prizeController.Delete)
		}
	}

	if r.balanceController != nil {
		movements := r.engine.Group("/historial-saldo")
		{
			movements.GET("", r.balanceController.List)
			movements.POST("", r.balanceController.Create)
			movements.GET("/:id", r.balanceController.Get)
			movements.PUT("/:id", r.balanceController.Update)
			movements.DELETE("/:id", r.balanceController.Delete)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
