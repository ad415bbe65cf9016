package dto

import "campus-events-api/modules/registration/entity"

// DirectRegisterRequest is the simplified flow: the seat is counted
// immediately, applicant details come from the account.
type DirectRegisterRequest struct {
	EventID   string `json:"eventId"`
	StudentID string `json:"studentId"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
}

// SubmitRequestRequest is the request-based flow: the entry starts pending
// and waits for the organizer's decision.
type SubmitRequestRequest struct {
	EventID    string `json:"eventId"`
	StudentID  string `json:"studentId"`
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type ReviewRequest struct {
	RegistrationID  string `json:"registrationId"`
	Action          string `json:"action"`
	RejectionReason string `json:"rejectionReason"`
}

type RegistrationResponse struct {
	Registration *entity.Registration `json:"registration"`
	Event        any                  `json:"event,omitempty"`
}

// StudentRegistration is one row of a student's history; Event is null with
// a note when the referenced event no longer exists.
type StudentRegistration struct {
	Registration entity.Registration  `json:"registration"`
	Event        *entity.EventSummary `json:"event"`
	Note         string               `json:"note,omitempty"`
}

type StudentRegistrationsResponse struct {
	Registrations                  []StudentRegistration `json:"registrations"`
	TotalRegistrations             int                   `json:"totalRegistrations"`
	ValidRegistrations             int                   `json:"validRegistrations"`
	RegistrationsWithMissingEvents int                   `json:"registrationsWithMissingEvents"`
}

type PendingRegistration struct {
	Registration entity.Registration  `json:"registration"`
	Event        *entity.EventSummary `json:"event"`
}

type PendingRegistrationsResponse struct {
	PendingRequests []PendingRegistration `json:"pendingRequests"`
	Count           int                   `json:"count"`
}
