package router

import (
	"campus-events-api/core/middleware"
	"campus-events-api/modules/report/controller"

	"github.com/labstack/echo/v4"
)

type ReportRouter struct {
	controller *controller.ReportController
}

func NewReportRouter(controller *controller.ReportController) *ReportRouter {
	return &ReportRouter{controller: controller}
}

func (r *ReportRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	reports := g.Group("/reports", mw.AuthMiddleware(), mw.RequireRole("organizer", "admin"))

	reports.GET("/organizers", r.controller.Organizers)
	reports.GET("/students", r.controller.Students)
}
