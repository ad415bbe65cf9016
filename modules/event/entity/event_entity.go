package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
)

func ValidStatus(s string) bool {
	switch EventStatus(s) {
	case StatusDraft, StatusPublished, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Categories is the closed set events must belong to.
var Categories = []string{
	"Technology",
	"Sports",
	"Education",
	"Arts & Culture",
	"Business",
	"Social",
	"Workshop",
	"Conference",
	"Seminar",
	"Networking",
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Event struct {
	ID          uuid.UUID   `db:"id" json:"_id"`
	Title       string      `db:"title" json:"title"`
	Slug        string      `db:"slug" json:"slug"`
	Description string      `db:"description" json:"description"`
	Date        string      `db:"date" json:"date"`
	Time        string      `db:"time" json:"time"`
	EndTime     string      `db:"end_time" json:"endTime"`
	Location    string      `db:"location" json:"location"`
	Category    string      `db:"category" json:"category"`
	Organizer   string      `db:"organizer" json:"organizer"`
	OrganizerID uuid.UUID   `db:"organizer_id" json:"organizerId"`
	Capacity    int         `db:"capacity" json:"capacity"`
	// RegistrationCount caches the ledger count for display. Capacity
	// decisions never read it; see modules/registration.
	RegistrationCount int            `db:"registration_count" json:"registrationCount"`
	Price             string         `db:"price" json:"price"`
	Requirements      pq.StringArray `db:"requirements" json:"requirements"`
	ContactEmail      string         `db:"contact_email" json:"contactEmail"`
	ContactPhone      string         `db:"contact_phone" json:"contactPhone"`
	Image             string         `db:"image" json:"image"`
	Status            EventStatus    `db:"status" json:"status"`
	CreatedAt         time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updatedAt"`
}
