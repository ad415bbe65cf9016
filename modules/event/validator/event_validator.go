package validator

import (
	"strings"

	"campus-events-api/core/controller"
	authvalidator "campus-events-api/modules/auth/validator"
	"campus-events-api/modules/event/dto"
	"campus-events-api/modules/event/entity"
)

func ValidateCreateEventRequest(req *dto.CreateEventRequest) *controller.ValidationResult {
	result := &controller.ValidationResult{}

	required := map[string]string{
		"title":        req.Title,
		"description":  req.Description,
		"date":         req.Date,
		"time":         req.Time,
		"endTime":      req.EndTime,
		"location":     req.Location,
		"category":     req.Category,
		"organizer":    req.Organizer,
		"organizerId":  req.OrganizerID,
		"contactEmail": req.ContactEmail,
		"contactPhone": req.ContactPhone,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			result.Add(field, field+" is required")
		}
	}

	if req.Category != "" && !entity.ValidCategory(req.Category) {
		result.Add("category", "invalid category")
	}

	if req.Capacity < 1 {
		result.Add("capacity", "capacity must be at least 1")
	}

	if req.ContactEmail != "" && !authvalidator.ValidEmail(req.ContactEmail) {
		result.Add("contactEmail", "please enter a valid contact email")
	}

	if req.Status != "" && !entity.ValidStatus(req.Status) {
		result.Add("status", "invalid status")
	}

	return result
}
