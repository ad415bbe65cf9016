package dto

import "github.com/google/uuid"

type CreateEventRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	EndTime      string   `json:"endTime"`
	Location     string   `json:"location"`
	Category     string   `json:"category"`
	Organizer    string   `json:"organizer"`
	OrganizerID  string   `json:"organizerId"`
	Capacity     int      `json:"capacity"`
	Price        string   `json:"price"`
	Requirements []string `json:"requirements"`
	ContactEmail string   `json:"contactEmail"`
	ContactPhone string   `json:"contactPhone"`
	Image        string   `json:"image"`
	Status       string   `json:"status"`
}

type ListEventsFilter struct {
	Category  string `query:"category"`
	Status    string `query:"status"`
	Organizer string `query:"organizer"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type EventListResponse struct {
	Events      any `json:"events"`
	TotalEvents int `json:"totalEvents"`
}

type UploadImageResponse struct {
	EventID uuid.UUID `json:"eventId"`
	URL     string    `json:"url"`
}
