package entity

import "github.com/google/uuid"

// OrganizerEventRow is one flat row of the organizer report query: one event
// with its organizer's identity joined on. The service groups rows per
// organizer.
type OrganizerEventRow struct {
	OrganizerID       uuid.UUID `db:"organizer_id"`
	OrganizerName     string    `db:"organizer_name"`
	OrganizerEmail    string    `db:"organizer_email"`
	EventID           uuid.UUID `db:"event_id"`
	Title             string    `db:"title"`
	Date              string    `db:"date"`
	Time              string    `db:"time"`
	Location          string    `db:"location"`
	Category          string    `db:"category"`
	Status            string    `db:"status"`
	RegistrationCount int       `db:"registration_count"`
	Capacity          int       `db:"capacity"`
}

// StudentRow is one grouped row of the student report: ledger aggregates for
// one student. Name/email/department come from the registration snapshots, so
// the report reflects what the student submitted.
type StudentRow struct {
	UserID             uuid.UUID `db:"user_id"`
	Name               string    `db:"name"`
	Email              string    `db:"email"`
	StudentID          string    `db:"student_id"`
	Department         string    `db:"department"`
	TotalRegistrations int       `db:"total_registrations"`
	Approved           int       `db:"approved"`
	Pending            int       `db:"pending"`
	Rejected           int       `db:"rejected"`
}

// StudentEventRow is one registration of a paged student, with the event
// summary joined on for display. Event columns are pointers because the
// event may have been deleted.
type StudentEventRow struct {
	UserID    uuid.UUID  `db:"user_id"`
	Reference string     `db:"reference"`
	Status    string     `db:"status"`
	EventID   *uuid.UUID `db:"event_id"`
	Title     *string    `db:"event_title"`
	Date      *string    `db:"event_date"`
	Time      *string    `db:"event_time"`
	Category  *string    `db:"event_category"`
}
