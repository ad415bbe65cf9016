package controller

import (
	"campus-events-api/core/controller"
	"campus-events-api/core/errors"
	"campus-events-api/core/middleware"
	"campus-events-api/modules/event/dto"
	"campus-events-api/modules/event/service"
	"campus-events-api/modules/event/validator"

	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(eventService service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   eventService,
	}
}

func (ctrl *EventController) CreateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CreateEventRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateEventRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Missing or invalid fields", validationResult)
	}

	event, err := ctrl.EventService.CreateEvent(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.CreatedResponse(c, event, "Event created successfully")
}

func (ctrl *EventController) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	filter := dto.ListEventsFilter{
		Category:  c.QueryParam("category"),
		Status:    c.QueryParam("status"),
		Organizer: c.QueryParam("organizer"),
	}

	events, err := ctrl.EventService.ListEvents(ctx, filter)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, dto.EventListResponse{
		Events:      events,
		TotalEvents: len(events),
	}, "Events fetched successfully")
}

func (ctrl *EventController) GetEvent(c echo.Context) error {
	ctx := c.Request().Context()

	event, err := ctrl.EventService.GetEvent(ctx, c.Param("id"))
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, event, "Event fetched successfully")
}

func (ctrl *EventController) ListByOrganizer(c echo.Context) error {
	ctx := c.Request().Context()

	events, err := ctrl.EventService.ListByOrganizer(ctx, c.Param("organizerId"))
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, dto.EventListResponse{
		Events:      events,
		TotalEvents: len(events),
	}, "Organizer events fetched successfully")
}

func (ctrl *EventController) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	callerID, ok := middleware.UserID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Not authenticated", nil)
	}

	requestData := new(dto.UpdateStatusRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	event, err := ctrl.EventService.UpdateStatus(ctx, c.Param("id"), callerID, requestData.Status)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, event, "Event status updated")
}

func (ctrl *EventController) UploadImage(c echo.Context) error {
	ctx := c.Request().Context()

	callerID, ok := middleware.UserID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Not authenticated", nil)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Image file is required", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctrl.InternalServerError(errors.ErrInternalServer, "Failed to read uploaded file", nil)
	}
	defer file.Close()

	resp, appErr := ctrl.EventService.UploadImage(ctx, c.Param("id"), callerID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, resp, "Image uploaded successfully")
}
