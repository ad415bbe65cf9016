package router

import (
	"campus-events-api/core/middleware"
	"campus-events-api/modules/registration/controller"

	"github.com/labstack/echo/v4"
)

type RegistrationRouter struct {
	controller *controller.RegistrationController
}

func NewRegistrationRouter(controller *controller.RegistrationController) *RegistrationRouter {
	return &RegistrationRouter{controller: controller}
}

func (r *RegistrationRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	g.POST("/register", r.controller.DirectRegister, mw.AuthMiddleware())
	g.POST("/register-request", r.controller.SubmitRequest, mw.AuthMiddleware())

	registrations := g.Group("/registrations", mw.AuthMiddleware())
	registrations.POST("/review", r.controller.Review,
		mw.RequireRole("organizer", "admin"))
	registrations.GET("/pending", r.controller.ListPending,
		mw.RequireRole("organizer", "admin"))
	registrations.GET("/:userId", r.controller.ListForUser)
}
