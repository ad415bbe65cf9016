package report

import (
	"campus-events-api/core/database"
	"campus-events-api/core/middleware"
	"campus-events-api/modules/report/controller"
	"campus-events-api/modules/report/repository"
	"campus-events-api/modules/report/router"
	"campus-events-api/modules/report/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewReportRepository(db)
	svc := service.NewReportService(repo)
	ctrl := controller.NewReportController(svc)
	r := router.NewReportRouter(ctrl)

	r.Register(g, mw)
}
