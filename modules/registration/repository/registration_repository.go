package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"campus-events-api/core/database"
	"campus-events-api/core/logger"
	"campus-events-api/modules/registration/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Workflow sentinels. The service maps these onto AppError codes; keeping
// them here lets the transaction code stay flat.
var (
	ErrEventNotFound         = errors.New("event not found")
	ErrEventNotPublished     = errors.New("event is not available for registration")
	ErrEventFull             = errors.New("event is full")
	ErrDuplicateRegistration = errors.New("already registered for this event")
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrNotOwner              = errors.New("not the organizer of this event")
	ErrNotPending            = errors.New("registration has already been decided")
)

const uniqueViolation = "23505"

type RegistrationRepositoryInterface interface {
	SubmitRequest(ctx context.Context, reg *entity.Registration) error
	DirectRegister(ctx context.Context, reg *entity.Registration) error
	Review(ctx context.Context, registrationID, organizerID uuid.UUID, approve bool, reason string) (*entity.Registration, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.RegistrationWithEvent, error)
	ListPendingByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.RegistrationWithEvent, error)
	RecountEvent(ctx context.Context, eventID uuid.UUID) error
}

type RegistrationRepository struct {
	db database.IDatabase
}

func NewRegistrationRepository(db database.IDatabase) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

const registrationColumns = `id, reference, event_id, user_id, student_id, name, email, phone,
	department, status, rejection_reason, approved_at, rejected_at, created_at, updated_at`

// lockEvent acquires the row-level lock that serialises every capacity
// decision for one event. Concurrent submissions and approvals queue up
// behind it, so count-then-write inside the same transaction is race-free.
func lockEvent(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID) (status string, capacity int, err error) {
	err = tx.QueryRowxContext(ctx,
		`SELECT status, capacity FROM events WHERE id = $1 FOR UPDATE`,
		eventID,
	).Scan(&status, &capacity)
	if err == sql.ErrNoRows {
		return "", 0, ErrEventNotFound
	}
	return status, capacity, err
}

func (r *RegistrationRepository) duplicateExists(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID, studentID string, userID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists,
		`SELECT EXISTS (
			SELECT 1 FROM registrations
			WHERE event_id = $1 AND (student_id = $2 OR user_id = $3)
		)`,
		eventID, studentID, userID,
	)
	return exists, err
}

func approvedCount(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID) (int, error) {
	var count int
	err := tx.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = 'approved'`,
		eventID,
	)
	return count, err
}

func insertRegistration(ctx context.Context, tx *sqlx.Tx, reg *entity.Registration) error {
	now := time.Now()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	err := tx.QueryRowxContext(ctx,
		`INSERT INTO registrations (reference, event_id, user_id, student_id, name, email, phone,
			department, status, rejection_reason, approved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, '', $10, $11, $12)
		RETURNING id`,
		reg.Reference, reg.EventID, reg.UserID, reg.StudentID, reg.Name, reg.Email,
		reg.Phone, reg.Department, reg.Status, reg.ApprovedAt, reg.CreatedAt, reg.UpdatedAt,
	).Scan(&reg.ID)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		// The unique indexes on (event_id, student_id) and (event_id, user_id)
		// close the check-then-insert race the EXISTS probe cannot.
		return ErrDuplicateRegistration
	}
	return err
}

// SubmitRequest files a pending registration for a published event, after
// duplicate and capacity checks under the event lock.
func (r *RegistrationRepository) SubmitRequest(ctx context.Context, reg *entity.Registration) error {
	tx, err := r.db.BeginTxx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	status, capacity, err := lockEvent(ctx, tx, reg.EventID)
	if err != nil {
		return err
	}
	if status != "published" {
		err = ErrEventNotPublished
		return err
	}

	exists, err := r.duplicateExists(ctx, tx, reg.EventID, reg.StudentID, reg.UserID)
	if err != nil {
		return err
	}
	if exists {
		err = ErrDuplicateRegistration
		return err
	}

	approved, err := approvedCount(ctx, tx, reg.EventID)
	if err != nil {
		return err
	}
	if approved >= capacity {
		err = ErrEventFull
		return err
	}

	reg.Status = entity.StatusPending
	if err = insertRegistration(ctx, tx, reg); err != nil {
		return err
	}

	return tx.Commit()
}

// DirectRegister files an immediately-counted registration and refreshes the
// event's cached counter from the ledger inside the same transaction.
func (r *RegistrationRepository) DirectRegister(ctx context.Context, reg *entity.Registration) error {
	tx, err := r.db.BeginTxx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, capacity, err := lockEvent(ctx, tx, reg.EventID)
	if err != nil {
		return err
	}

	exists, err := r.duplicateExists(ctx, tx, reg.EventID, reg.StudentID, reg.UserID)
	if err != nil {
		return err
	}
	if exists {
		err = ErrDuplicateRegistration
		return err
	}

	approved, err := approvedCount(ctx, tx, reg.EventID)
	if err != nil {
		return err
	}
	if approved >= capacity {
		err = ErrEventFull
		return err
	}

	now := time.Now()
	reg.Status = entity.StatusApproved
	reg.ApprovedAt = &now
	if err = insertRegistration(ctx, tx, reg); err != nil {
		return err
	}

	// Recompute, never blind-increment: the cached counter must follow the
	// ledger even if it had drifted.
	if err = recountInTx(ctx, tx, reg.EventID); err != nil {
		return err
	}

	return tx.Commit()
}

// Review decides a pending registration. Approval recounts under the event
// lock so concurrent approvals cannot overshoot capacity, and a second review
// of the same entry fails the pending check.
func (r *RegistrationRepository) Review(ctx context.Context, registrationID, organizerID uuid.UUID, approve bool, reason string) (*entity.Registration, error) {
	tx, err := r.db.BeginTxx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var eventID uuid.UUID
	err = tx.QueryRowxContext(ctx,
		`SELECT event_id FROM registrations WHERE id = $1`, registrationID,
	).Scan(&eventID)
	if err == sql.ErrNoRows {
		err = ErrRegistrationNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	var eventOwner uuid.UUID
	var capacity int
	err = tx.QueryRowxContext(ctx,
		`SELECT organizer_id, capacity FROM events WHERE id = $1 FOR UPDATE`, eventID,
	).Scan(&eventOwner, &capacity)
	if err == sql.ErrNoRows {
		err = ErrEventNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if eventOwner != organizerID {
		err = ErrNotOwner
		return nil, err
	}

	// Re-read the status under the event lock: a concurrent review has
	// either finished (status changed) or is queued behind us.
	var status entity.RegistrationStatus
	err = tx.QueryRowxContext(ctx,
		`SELECT status FROM registrations WHERE id = $1 FOR UPDATE`, registrationID,
	).Scan(&status)
	if err != nil {
		return nil, err
	}
	if status != entity.StatusPending {
		err = ErrNotPending
		return nil, err
	}

	now := time.Now()
	if approve {
		approved, countErr := approvedCount(ctx, tx, eventID)
		if countErr != nil {
			err = countErr
			return nil, err
		}
		if approved >= capacity {
			err = ErrEventFull
			return nil, err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE registrations
			SET status = 'approved', approved_at = $1, rejection_reason = '', updated_at = $1
			WHERE id = $2`,
			now, registrationID,
		)
		if err != nil {
			return nil, err
		}

		// The counter reflects approved seats; set it from the in-tx count
		// rather than incrementing whatever was there before.
		_, err = tx.ExecContext(ctx,
			`UPDATE events SET registration_count = $1, updated_at = $2 WHERE id = $3`,
			approved+1, now, eventID,
		)
		if err != nil {
			return nil, err
		}
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE registrations
			SET status = 'rejected', rejected_at = $1, rejection_reason = $2, updated_at = $1
			WHERE id = $3`,
			now, reason, registrationID,
		)
		if err != nil {
			return nil, err
		}
	}

	var updated entity.Registration
	err = tx.GetContext(ctx, &updated,
		`SELECT `+registrationColumns+` FROM registrations WHERE id = $1`, registrationID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return &updated, nil
}

const joinedColumns = `
	r.id, r.reference, r.event_id, r.user_id, r.student_id, r.name, r.email, r.phone,
	r.department, r.status, r.rejection_reason, r.approved_at, r.rejected_at,
	r.created_at, r.updated_at,
	e.id AS event_ref, e.title AS event_title, e.date AS event_date, e.time AS event_time,
	e.location AS event_location, e.category AS event_category, e.organizer AS event_organizer,
	e.price AS event_price, e.image AS event_image, e.status AS event_status,
	e.capacity AS event_capacity`

// ListByUser returns a student's history, newest first. LEFT JOIN: the event
// may be gone and the row must still come back.
func (r *RegistrationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.RegistrationWithEvent, error) {
	query := `
		SELECT ` + joinedColumns + `
		FROM registrations r
		LEFT JOIN events e ON e.id = r.event_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`
	var rows []entity.RegistrationWithEvent
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		logger.Error("RegistrationRepository:ListByUser:Error:", err)
		return nil, err
	}
	return rows, nil
}

func (r *RegistrationRepository) ListPendingByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.RegistrationWithEvent, error) {
	query := `
		SELECT ` + joinedColumns + `
		FROM registrations r
		JOIN events e ON e.id = r.event_id
		WHERE e.organizer_id = $1 AND r.status = 'pending'
		ORDER BY r.created_at DESC
	`
	var rows []entity.RegistrationWithEvent
	if err := r.db.SelectContext(ctx, &rows, query, organizerID); err != nil {
		logger.Error("RegistrationRepository:ListPendingByOrganizer:Error:", err)
		return nil, err
	}
	return rows, nil
}

// RecountEvent refreshes the cached counter from the ledger. Called by the
// background recount task; display-only, so no lock is taken.
func (r *RegistrationRepository) RecountEvent(ctx context.Context, eventID uuid.UUID) error {
	query := `
		UPDATE events
		SET registration_count = (
			SELECT COUNT(*) FROM registrations
			WHERE event_id = $1 AND status = 'approved'
		)
		WHERE id = $1
	`
	if err := r.db.ExecContext(ctx, query, eventID); err != nil {
		logger.Error("RegistrationRepository:RecountEvent:Error:", err, "event_id", eventID)
		return err
	}
	return nil
}

func recountInTx(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE events
		SET registration_count = (
			SELECT COUNT(*) FROM registrations
			WHERE event_id = $1 AND status = 'approved'
		)
		WHERE id = $1`,
		eventID,
	)
	return err
}
