package auth

import (
	"campus-events-api/core/cache"
	"campus-events-api/core/database"
	"campus-events-api/core/middleware"
	"campus-events-api/modules/auth/controller"
	"campus-events-api/modules/auth/repository"
	"campus-events-api/modules/auth/router"
	"campus-events-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and returns the service for use by other modules.
func Init(g *echo.Group, db database.IDatabase, cache cache.Cache, mw *middleware.Middleware) *service.AuthService {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, cache)
	ctrl := controller.NewAuthController(svc)
	r := router.NewAuthRouter(ctrl)

	r.Register(g, mw)

	return svc
}

// GetRepository exposes the user repository so other modules can resolve
// account references without re-wiring the module.
func GetRepository(db database.IDatabase) repository.AuthRepositoryInterface {
	return repository.NewAuthRepository(db)
}
