package registration

import (
	"campus-events-api/core/database"
	"campus-events-api/core/middleware"
	authRepo "campus-events-api/modules/auth/repository"
	eventRepo "campus-events-api/modules/event/repository"
	"campus-events-api/modules/registration/controller"
	"campus-events-api/modules/registration/repository"
	"campus-events-api/modules/registration/router"
	"campus-events-api/modules/registration/service"

	"github.com/labstack/echo/v4"
)

// Init wires the registration workflow. The queue and notifier are optional
// collaborators: pass nil to run without background recounts or notices.
func Init(
	g *echo.Group,
	db database.IDatabase,
	mw *middleware.Middleware,
	queue service.RecountEnqueuer,
	notifier service.DecisionNotifier,
) *service.RegistrationService {
	repo := repository.NewRegistrationRepository(db)
	users := authRepo.NewAuthRepository(db)
	events := eventRepo.NewEventRepository(db)
	svc := service.NewRegistrationService(repo, users, events, queue, notifier)
	ctrl := controller.NewRegistrationController(svc)
	r := router.NewRegistrationRouter(ctrl)

	r.Register(g, mw)

	return svc
}
