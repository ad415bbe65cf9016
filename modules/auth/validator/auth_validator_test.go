package validator

import (
	"testing"

	"campus-events-api/modules/auth/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"student@campus.edu",
		"first.last@uni.ac.uk",
		"a-b@sub.domain.com",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"@campus.edu",
		"student@",
		"student@campus",
		"student@campus.toolong",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), email)
	}
}

func validSignup() *dto.SignupRequest {
	return &dto.SignupRequest{
		Name:            "Minh Nguyen",
		Email:           "minh@campus.edu",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
	}
}

func TestValidateSignupRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.SignupRequest)
		field  string
	}{
		{"valid", func(r *dto.SignupRequest) {}, ""},
		{"name too short", func(r *dto.SignupRequest) { r.Name = "ab" }, "name"},
		{"name too long", func(r *dto.SignupRequest) {
			r.Name = "this name is way too long to be accepted here"
		}, "name"},
		{"bad email", func(r *dto.SignupRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *dto.SignupRequest) {
			r.Password = "short"
			r.PasswordConfirm = "short"
		}, "password"},
		{"mismatched confirm", func(r *dto.SignupRequest) { r.PasswordConfirm = "different1" }, "passwordConfirm"},
		{"unknown role", func(r *dto.SignupRequest) { r.Role = "superuser" }, "role"},
		{"unknown department", func(r *dto.SignupRequest) { r.Department = "Astrology" }, "department"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(req)
			result := ValidateSignupRequest(req)
			if tt.field == "" {
				assert.False(t, result.HasError())
				return
			}
			assert.True(t, result.HasError())
			found := false
			for _, e := range result.Errors {
				if e.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected error on field %q", tt.field)
		})
	}
}

func TestValidateLoginRequest(t *testing.T) {
	result := ValidateLoginRequest(&dto.LoginRequest{})
	assert.True(t, result.HasError())

	result = ValidateLoginRequest(&dto.LoginRequest{Email: "a@b.co", Password: "x"})
	assert.False(t, result.HasError())
}
