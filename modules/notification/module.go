package notification

import (
	"campus-events-api/core/database"
	"campus-events-api/core/middleware"
	"campus-events-api/modules/notification/controller"
	"campus-events-api/modules/notification/repository"
	"campus-events-api/modules/notification/router"
	"campus-events-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the notification module and returns the service so the
// registration workflow can publish decision notices.
func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	r := router.NewNotificationRouter(ctrl)

	r.Register(g, mw)

	return svc
}
