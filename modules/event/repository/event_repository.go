package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"campus-events-api/core/database"
	"campus-events-api/core/logger"
	"campus-events-api/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	List(ctx context.Context, category, status, organizer string) ([]entity.Event, error)
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepository struct {
	db database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, slug, description, date, time, end_time, location, category,
	organizer, organizer_id, capacity, registration_count, price, requirements,
	contact_email, contact_phone, image, status, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (title, slug, description, date, time, end_time, location, category,
			organizer, organizer_id, capacity, registration_count, price, requirements,
			contact_email, contact_phone, image, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id
	`
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.Status == "" {
		event.Status = entity.StatusDraft
	}

	row := r.db.QueryRowContext(ctx, query,
		event.Title, event.Slug, event.Description, event.Date, event.Time, event.EndTime,
		event.Location, event.Category, event.Organizer, event.OrganizerID,
		event.Capacity, event.RegistrationCount, event.Price, event.Requirements,
		event.ContactEmail, event.ContactPhone, event.Image, event.Status,
		event.CreatedAt, event.UpdatedAt,
	)
	if err := row.Scan(&event.ID); err != nil {
		logger.Error("EventRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID:Error:", err)
		return nil, err
	}
	return &event, nil
}

// List returns events matching the optional filters, soonest first.
func (r *EventRepository) List(ctx context.Context, category, status, organizer string) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	args := []any{}

	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if organizer != "" {
		args = append(args, organizer)
		query += fmt.Sprintf(` AND organizer = $%d`, len(args))
	}
	query += ` ORDER BY date ASC, time ASC`

	var events []entity.Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:List:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE organizer_id = $1 ORDER BY created_at DESC`

	var events []entity.Event
	if err := r.db.SelectContext(ctx, &events, query, organizerID); err != nil {
		logger.Error("EventRepository:ListByOrganizer:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error {
	query := `UPDATE events SET status = $1, updated_at = $2 WHERE id = $3`
	if err := r.db.ExecContext(ctx, query, status, time.Now(), id); err != nil {
		logger.Error("EventRepository:UpdateStatus:Error:", err)
		return err
	}
	return nil
}

func (r *EventRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	query := `UPDATE events SET image = $1, updated_at = $2 WHERE id = $3`
	if err := r.db.ExecContext(ctx, query, imageURL, time.Now(), id); err != nil {
		logger.Error("EventRepository:UpdateImage:Error:", err)
		return err
	}
	return nil
}

func (r *EventRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE slug = $1)`
	if err := r.db.GetContext(ctx, &exists, query, slug); err != nil {
		logger.Error("EventRepository:SlugExists:Error:", err)
		return false, err
	}
	return exists, nil
}

// Delete removes an event. Only the compensating step of CreateEvent uses it;
// there is no public delete surface.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	if err := r.db.ExecContext(ctx, query, id); err != nil {
		logger.Error("EventRepository:Delete:Error:", err)
		return err
	}
	return nil
}
