package router

import (
	"campus-events-api/core/middleware"
	"campus-events-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	g.POST("/signup", r.controller.Signup)
	g.POST("/login", r.controller.Login)
	g.POST("/logout", r.controller.Logout, mw.AuthMiddleware())
	g.GET("/me", r.controller.Me, mw.AuthMiddleware())
}
