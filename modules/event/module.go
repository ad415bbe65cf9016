package event

import (
	"campus-events-api/core/database"
	"campus-events-api/core/middleware"
	"campus-events-api/core/storage"
	authRepo "campus-events-api/modules/auth/repository"
	"campus-events-api/modules/event/controller"
	"campus-events-api/modules/event/repository"
	"campus-events-api/modules/event/router"
	"campus-events-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event module and returns the service for other modules.
func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware, uploader storage.Uploader) *service.EventService {
	repo := repository.NewEventRepository(db)
	users := authRepo.NewAuthRepository(db)
	svc := service.NewEventService(repo, users, uploader)
	ctrl := controller.NewEventController(svc)
	r := router.NewEventRouter(ctrl)

	r.Register(g, mw)

	return svc
}
