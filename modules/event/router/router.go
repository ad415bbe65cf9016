package router

import (
	"campus-events-api/core/middleware"
	"campus-events-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	events := g.Group("/events")

	events.GET("", r.controller.ListEvents)
	events.GET("/by-organizer/:organizerId", r.controller.ListByOrganizer)
	events.GET("/:id", r.controller.GetEvent)

	events.POST("", r.controller.CreateEvent,
		mw.AuthMiddleware(), mw.RequireRole("organizer", "admin"))
	events.PATCH("/:id/status", r.controller.UpdateStatus,
		mw.AuthMiddleware(), mw.RequireRole("organizer", "admin"))
	events.POST("/:id/image", r.controller.UploadImage,
		mw.AuthMiddleware(), mw.RequireRole("organizer", "admin"))
}
