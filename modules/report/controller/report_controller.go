package controller

import (
	"campus-events-api/core/controller"
	"campus-events-api/core/params"
	"campus-events-api/modules/report/service"

	"github.com/labstack/echo/v4"
)

type ReportController struct {
	controller.BaseController
	ReportService service.ReportServiceInterface
}

func NewReportController(reportService service.ReportServiceInterface) *ReportController {
	return &ReportController{
		BaseController: controller.NewBaseController(),
		ReportService:  reportService,
	}
}

func (ctrl *ReportController) Organizers(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := ctrl.ReportService.OrganizersReport(ctx)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, resp, "Organizers report generated successfully")
}

func (ctrl *ReportController) Students(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := ctrl.ReportService.StudentsReport(ctx, params.FromContext(c))
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, resp, "Students report generated successfully")
}
