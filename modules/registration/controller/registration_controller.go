package controller

import (
	"campus-events-api/core/controller"
	"campus-events-api/core/errors"
	"campus-events-api/core/middleware"
	"campus-events-api/modules/auth/entity"
	"campus-events-api/modules/registration/dto"
	"campus-events-api/modules/registration/service"

	"github.com/labstack/echo/v4"
)

type RegistrationController struct {
	controller.BaseController
	RegistrationService service.RegistrationServiceInterface
}

func NewRegistrationController(registrationService service.RegistrationServiceInterface) *RegistrationController {
	return &RegistrationController{
		BaseController:      controller.NewBaseController(),
		RegistrationService: registrationService,
	}
}

func (ctrl *RegistrationController) DirectRegister(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.DirectRegisterRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	resp, err := ctrl.RegistrationService.DirectRegister(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.CreatedResponse(c, resp, "Registered successfully")
}

func (ctrl *RegistrationController) SubmitRequest(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.SubmitRequestRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	resp, err := ctrl.RegistrationService.SubmitRequest(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.CreatedResponse(c, resp, "Registration request submitted, awaiting organizer approval")
}

// Review takes the deciding organizer from the authenticated session, never
// from the request body.
func (ctrl *RegistrationController) Review(c echo.Context) error {
	ctx := c.Request().Context()

	callerID, ok := middleware.UserID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Not authenticated", nil)
	}

	requestData := new(dto.ReviewRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	reg, err := ctrl.RegistrationService.Review(ctx, callerID, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	message := "Registration approved"
	if reg.Status == "rejected" {
		message = "Registration rejected"
	}
	return ctrl.SuccessResponse(c, reg, message)
}

func (ctrl *RegistrationController) ListForUser(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := ctrl.RegistrationService.ListForUser(ctx, c.Param("userId"))
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, resp, "Registrations fetched successfully")
}

func (ctrl *RegistrationController) ListPending(c echo.Context) error {
	ctx := c.Request().Context()

	callerID, ok := middleware.UserID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Not authenticated", nil)
	}

	// Organizers see their own queue; admins may inspect another organizer's.
	organizerID := callerID.String()
	if middleware.Role(c) == string(entity.RoleAdmin) {
		if q := c.QueryParam("organizerId"); q != "" {
			organizerID = q
		}
	}

	resp, err := ctrl.RegistrationService.ListPendingForOrganizer(ctx, organizerID)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, resp, "Pending registrations fetched successfully")
}
