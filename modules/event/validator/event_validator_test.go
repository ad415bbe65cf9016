package validator

import (
	"testing"

	"campus-events-api/modules/event/dto"

	"github.com/stretchr/testify/assert"
)

func validCreate() *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:        "Tech Career Fair",
		Description:  "Annual career fair",
		Date:         "2026-10-12",
		Time:         "09:00",
		EndTime:      "17:00",
		Location:     "Main Hall",
		Category:     "Technology",
		Organizer:    "Career Services",
		OrganizerID:  "2f0c5a7e-1111-4222-8333-444455556666",
		Capacity:     200,
		ContactEmail: "careers@campus.edu",
		ContactPhone: "0123456789",
	}
}

func TestValidateCreateEventRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateEventRequest)
		wantErr bool
	}{
		{"valid", func(r *dto.CreateEventRequest) {}, false},
		{"missing title", func(r *dto.CreateEventRequest) { r.Title = "" }, true},
		{"missing location", func(r *dto.CreateEventRequest) { r.Location = "  " }, true},
		{"bad category", func(r *dto.CreateEventRequest) { r.Category = "Knitting" }, true},
		{"zero capacity", func(r *dto.CreateEventRequest) { r.Capacity = 0 }, true},
		{"negative capacity", func(r *dto.CreateEventRequest) { r.Capacity = -5 }, true},
		{"bad contact email", func(r *dto.CreateEventRequest) { r.ContactEmail = "nope" }, true},
		{"bad status", func(r *dto.CreateEventRequest) { r.Status = "archived" }, true},
		{"explicit published status", func(r *dto.CreateEventRequest) { r.Status = "published" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(req)
			result := ValidateCreateEventRequest(req)
			assert.Equal(t, tt.wantErr, result.HasError())
		})
	}
}
