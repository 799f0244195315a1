// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/betting-platform/backend/config"
	"github.com/betting-platform/backend/internal/application/usecase/auth"
	"github.com/betting-platform/backend/internal/application/usecase/balance"
	"github.com/betting-platform/backend/internal/application/usecase/game"
	"github.com/betting-platform/backend/internal/application/usecase/match"
	"github.com/betting-platform/backend/internal/application/usecase/prize"
	"github.com/betting-platform/backend/internal/application/usecase/ticket"
	"github.com/betting-platform/backend/internal/application/usecase/user"
	"github.com/betting-platform/backend/internal/infra/server/router"
	"github.com/betting-platform/backend/internal/integration/adapters"
	"github.com/betting-platform/backend/internal/integration/entrypoint/controller"
	"github.com/betting-platform/backend/internal/integration/entrypoint/middleware"
	"github.com/betting-platform/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	gameRepo := persistence.NewGameRepository(db)
	matchRepo := persistence.NewMatchRepository(db)
	ticketRepo := persistence.NewTicketRepository(db)
	prizeRepo := persistence.NewPrizeRepository(db)
	movementRepo := persistence.NewBalanceMovementRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create user use cases
	createUserUseCase := user.NewCreateUserUseCase(userRepo, passwordService)
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	listAdminsUseCase := user.NewListAdminsUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo, passwordService)
	deactivateUserUseCase := user.NewDeactivateUserUseCase(updateUserUseCase)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)
	changePasswordUseCase := user.NewChangePasswordUseCase(userRepo, passwordService)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	createAdminUseCase := auth.NewCreateDefaultAdminUseCase(userRepo, passwordService, createUserUseCase)
	verifyUserUseCase := auth.NewVerifyUserUseCase(userRepo)

	// Create game use cases
	createGameUseCase := game.NewCreateGameUseCase(gameRepo)
	getGameUseCase := game.NewGetGameUseCase(gameRepo)
	listGamesUseCase := game.NewListGamesUseCase(gameRepo)
	updateGameUseCase := game.NewUpdateGameUseCase(gameRepo)
	deleteGameUseCase := game.NewDeleteGameUseCase(gameRepo)

	// Create match use cases
	createMatchUseCase := match.NewCreateMatchUseCase(matchRepo, userRepo, gameRepo, prizeRepo)
	getMatchUseCase := match.NewGetMatchUseCase(matchRepo)
	listMatchesUseCase := match.NewListMatchesUseCase(matchRepo)
	updateMatchUseCase := match.NewUpdateMatchUseCase(matchRepo, prizeRepo)
	deleteMatchUseCase := match.NewDeleteMatchUseCase(matchRepo)

	// Create ticket use cases
	createTicketUseCase := ticket.NewCreateTicketUseCase(ticketRepo, userRepo, gameRepo)
	getTicketUseCase := ticket.NewGetTicketUseCase(ticketRepo)
	listTicketsUseCase := ticket.NewListTicketsUseCase(ticketRepo)
	updateTicketUseCase := ticket.NewUpdateTicketUseCase(ticketRepo)
	deleteTicketUseCase := ticket.NewDeleteTicketUseCase(ticketRepo)

	// Create prize use cases
	createPrizeUseCase := prize.NewCreatePrizeUseCase(prizeRepo, gameRepo)
	getPrizeUseCase := prize.NewGetPrizeUseCase(prizeRepo)
	listPrizesUseCase := prize.NewListPrizesUseCase(prizeRepo)
	updatePrizeUseCase := prize.NewUpdatePrizeUseCase(prizeRepo)
	deletePrizeUseCase := prize.NewDeletePrizeUseCase(prizeRepo)

	// Create balance ledger use cases
	createMovementUseCase := balance.NewCreateMovementUseCase(movementRepo, userRepo)
	getMovementUseCase := balance.NewGetMovementUseCase(movementRepo)
	listMovementsUseCase := balance.NewListMovementsUseCase(movementRepo)
	updateMovementUseCase := balance.NewUpdateMovementUseCase(movementRepo)
	deleteMovementUseCase := balance.NewDeleteMovementUseCase(movementRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		loginUseCase,
		createUserUseCase,
		createAdminUseCase,
		verifyUserUseCase,
	)

	userController := controller.NewUserController(
		createUserUseCase,
		getUserUseCase,
		listUsersUseCase,
		listAdminsUseCase,
		updateUserUseCase,
		deactivateUserUseCase,
		deleteUserUseCase,
		changePasswordUseCase,
	)

	gameController := controller.NewGameController(
		createGameUseCase,
		getGameUseCase,
		listGamesUseCase,
		updateGameUseCase,
		deleteGameUseCase,
	)

	matchController := controller.NewMatchController(
		createMatchUseCase,
		getMatchUseCase,
		listMatchesUseCase,
		updateMatchUseCase,
		deleteMatchUseCase,
	)

	ticketController := controller.NewTicketController(
		createTicketUseCase,
		getTicketUseCase,
		listTicketsUseCase,
		updateTicketUseCase,
		deleteTicketUseCase,
	)

	prizeController := controller.NewPrizeController(
		createPrizeUseCase,
		getPrizeUseCase,
		listPrizesUseCase,
		updatePrizeUseCase,
		deletePrizeUseCase,
	)

	balanceController := controller.NewBalanceController(
		createMovementUseCase,
		getMovementUseCase,
		listMovementsUseCase,
		updateMovementUseCase,
		deleteMovementUseCase,
	)

	// Create middleware
	loginRateLimiter := newLoginRateLimiter(cfg)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		gameController,
		matchController,
		ticketController,
		prizeController,
		balanceController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

// newLoginRateLimiter picks the limiter backend. Test environments get a
// limit high enough to never trip; a configured Redis URL shares counters
// across instances; otherwise the limiter is in-process.
func newLoginRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		return middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	}

	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Warn("Invalid REDIS_URL, falling back to in-memory rate limiter", "error", err)
			return middleware.NewRateLimiter()
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		return middleware.NewRedisRateLimiter(redis.NewClient(opts), 5, 1*time.Minute)
	}

	return middleware.NewRateLimiter()
}
