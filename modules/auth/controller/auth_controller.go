package controller

import (
	"net/http"
	"time"

	"campus-events-api/core/config"
	"campus-events-api/core/constants"
	"campus-events-api/core/controller"
	"campus-events-api/core/errors"
	"campus-events-api/core/logger"
	"campus-events-api/core/middleware"
	"campus-events-api/modules/auth/dto"
	"campus-events-api/modules/auth/service"
	"campus-events-api/modules/auth/validator"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(authService service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

// setAuthCookie mirrors the token in an HTTP-only cookie so browser clients
// keep their session without handling the bearer token themselves.
func setAuthCookie(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(constants.TokenExpiry.Seconds()),
		SameSite: http.SameSiteLaxMode,
	}
	if cfg, ok := config.GetSafe(); ok && cfg.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}
	c.SetCookie(cookie)
}

func clearAuthCookie(c echo.Context) {
	cookie := &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	}
	c.SetCookie(cookie)
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.SignupRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateSignupRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Please fill all the fields", validationResult)
	}

	authResponse, err := ctrl.AuthService.Signup(ctx, requestData)
	if err != nil {
		if err.Code == errors.ErrAlreadyExists {
			return ctrl.BadRequest(err.Code, err.Message, nil)
		}
		return ctrl.ErrorResponse(c, err)
	}

	setAuthCookie(c, authResponse.Token)
	return ctrl.CreatedResponse(c, authResponse, "User created successfully")
}

func (ctrl *AuthController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateLoginRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Please fill all the fields", validationResult)
	}

	authResponse, err := ctrl.AuthService.Login(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	setAuthCookie(c, authResponse.Token)
	return ctrl.SuccessResponse(c, authResponse, "User logged in successfully")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	token := middleware.Token(c)
	if token != "" {
		if err := ctrl.AuthService.Logout(ctx, token); err != nil {
			logger.Error("AuthController:Logout:Error:", err)
			return ctrl.ErrorResponse(c, err)
		}
	}

	clearAuthCookie(c)
	return ctrl.SuccessResponse(c, nil, "Logged out successfully")
}

func (ctrl *AuthController) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Not authenticated", nil)
	}

	user, err := ctrl.AuthService.GetUser(ctx, userID)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, user, "User fetched successfully")
}
