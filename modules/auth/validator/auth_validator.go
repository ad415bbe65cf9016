package validator

import (
	"regexp"
	"strings"

	"campus-events-api/core/controller"
	"campus-events-api/modules/auth/dto"
	"campus-events-api/modules/auth/entity"
)

// emailPattern matches the address check used across the app.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidateSignupRequest(req *dto.SignupRequest) *controller.ValidationResult {
	result := &controller.ValidationResult{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		result.Add("name", "name is required")
	} else if len(name) < 3 || len(name) > 30 {
		result.Add("name", "name must be between 3 and 30 characters")
	}

	if req.Email == "" {
		result.Add("email", "email is required")
	} else if !ValidEmail(req.Email) {
		result.Add("email", "please enter a valid email")
	}

	if req.Password == "" {
		result.Add("password", "password is required")
	} else if len(req.Password) < 8 {
		result.Add("password", "password must be at least 8 characters")
	}

	if req.PasswordConfirm == "" {
		result.Add("passwordConfirm", "password confirmation is required")
	} else if req.Password != req.PasswordConfirm {
		result.Add("passwordConfirm", "passwords do not match")
	}

	if req.Role != "" && !entity.ValidRole(req.Role) {
		result.Add("role", "role must be student, organizer, or admin")
	}

	// Student profile fields are optional at signup but validated when given.
	if req.Department != "" && !entity.ValidDepartment(req.Department) {
		result.Add("department", "unknown department")
	}

	return result
}

func ValidateLoginRequest(req *dto.LoginRequest) *controller.ValidationResult {
	result := &controller.ValidationResult{}

	if req.Email == "" {
		result.Add("email", "email is required")
	}
	if req.Password == "" {
		result.Add("password", "password is required")
	}

	return result
}
