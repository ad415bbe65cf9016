package dto

import "github.com/google/uuid"

type OrganizerReportEvent struct {
	ID                uuid.UUID `json:"_id"`
	Title             string    `json:"title"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Location          string    `json:"location"`
	Category          string    `json:"category"`
	Status            string    `json:"status"`
	RegistrationCount int       `json:"registrationCount"`
	Capacity          int       `json:"capacity"`
}

type OrganizerReport struct {
	OrganizerID        uuid.UUID              `json:"organizerId"`
	Name               string                 `json:"name"`
	Email              string                 `json:"email"`
	Events             []OrganizerReportEvent `json:"events"`
	TotalEvents        int                    `json:"totalEvents"`
	TotalRegistrations int                    `json:"totalRegistrations"`
}

type OrganizersReportResponse struct {
	Organizers      []OrganizerReport `json:"organizers"`
	TotalOrganizers int               `json:"totalOrganizers"`
}

type StudentReportEvent struct {
	ID        *uuid.UUID `json:"_id,omitempty"`
	Title     *string    `json:"title,omitempty"`
	Date      *string    `json:"date,omitempty"`
	Time      *string    `json:"time,omitempty"`
	Category  *string    `json:"category,omitempty"`
	Reference string     `json:"reference"`
	Status    string     `json:"status"`
}

type StudentReport struct {
	UserID             uuid.UUID            `json:"userId"`
	Name               string               `json:"name"`
	Email              string               `json:"email"`
	StudentID          string               `json:"studentId"`
	Department         string               `json:"department"`
	TotalRegistrations int                  `json:"totalRegistrations"`
	Approved           int                  `json:"approved"`
	Pending            int                  `json:"pending"`
	Rejected           int                  `json:"rejected"`
	Events             []StudentReportEvent `json:"events"`
}

type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalStudents int  `json:"totalStudents"`
	HasNext       bool `json:"hasNext"`
	HasPrev       bool `json:"hasPrev"`
}

type StudentsReportResponse struct {
	Students   []StudentReport `json:"students"`
	Pagination Pagination      `json:"pagination"`
}
