package entity

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusApproved RegistrationStatus = "approved"
	StatusRejected RegistrationStatus = "rejected"
)

// Registration is one ledger entry: one student's attempt to attend one
// event. Applicant fields are snapshotted at registration time so the entry
// stays meaningful even if the account changes later.
type Registration struct {
	ID              uuid.UUID          `db:"id" json:"_id"`
	Reference       string             `db:"reference" json:"reference"`
	EventID         uuid.UUID          `db:"event_id" json:"eventId"`
	UserID          uuid.UUID          `db:"user_id" json:"userId"`
	StudentID       string             `db:"student_id" json:"studentId"`
	Name            string             `db:"name" json:"name"`
	Email           string             `db:"email" json:"email"`
	Phone           string             `db:"phone" json:"phone"`
	Department      string             `db:"department" json:"department"`
	Status          RegistrationStatus `db:"status" json:"status"`
	RejectionReason string             `db:"rejection_reason" json:"rejectionReason"`
	ApprovedAt      *time.Time         `db:"approved_at" json:"approvedAt,omitempty"`
	RejectedAt      *time.Time         `db:"rejected_at" json:"rejectedAt,omitempty"`
	CreatedAt       time.Time          `db:"created_at" json:"registrationDate"`
	UpdatedAt       time.Time          `db:"updated_at" json:"updatedAt"`
}

// EventSummary carries the event columns joined onto ledger reads for
// display. Pointers because the parent event may have been deleted; the
// ledger entry outlives it.
type EventSummary struct {
	ID        *uuid.UUID `db:"event_ref" json:"_id,omitempty"`
	Title     *string    `db:"event_title" json:"title,omitempty"`
	Date      *string    `db:"event_date" json:"date,omitempty"`
	Time      *string    `db:"event_time" json:"time,omitempty"`
	Location  *string    `db:"event_location" json:"location,omitempty"`
	Category  *string    `db:"event_category" json:"category,omitempty"`
	Organizer *string    `db:"event_organizer" json:"organizer,omitempty"`
	Price     *string    `db:"event_price" json:"price,omitempty"`
	Image     *string    `db:"event_image" json:"image,omitempty"`
	Status    *string    `db:"event_status" json:"status,omitempty"`
	Capacity  *int       `db:"event_capacity" json:"capacity,omitempty"`
}

func (s EventSummary) Missing() bool {
	return s.ID == nil
}

// RegistrationWithEvent is the joined row shape used by list queries.
type RegistrationWithEvent struct {
	Registration
	EventSummary
}
