package repository

import (
	"context"
	"fmt"

	"campus-events-api/core/database"
	"campus-events-api/core/logger"
	"campus-events-api/core/params"
	"campus-events-api/modules/report/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ReportRepositoryInterface interface {
	ListOrganizerEvents(ctx context.Context) ([]entity.OrganizerEventRow, error)
	CountStudents(ctx context.Context, p params.QueryParams) (int, error)
	ListStudents(ctx context.Context, p params.QueryParams) ([]entity.StudentRow, error)
	ListStudentEvents(ctx context.Context, userIDs []uuid.UUID) ([]entity.StudentEventRow, error)
}

type ReportRepository struct {
	db database.IDatabase
}

func NewReportRepository(db database.IDatabase) *ReportRepository {
	return &ReportRepository{db: db}
}

// ListOrganizerEvents returns every event joined with its organizer, grouped
// in memory by the service. Events order (date, time) within an organizer.
func (r *ReportRepository) ListOrganizerEvents(ctx context.Context) ([]entity.OrganizerEventRow, error) {
	query := `
		SELECT
			u.id AS organizer_id, u.name AS organizer_name, u.email AS organizer_email,
			e.id AS event_id, e.title, e.date, e.time, e.location, e.category,
			e.status, e.registration_count, e.capacity
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		ORDER BY u.id, e.date ASC, e.time ASC
	`
	var rows []entity.OrganizerEventRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		logger.Error("ReportRepository:ListOrganizerEvents:Error:", err)
		return nil, err
	}
	return rows, nil
}

// studentFilter builds the shared WHERE clause for the student report.
func studentFilter(p params.QueryParams) (string, []any) {
	where := "WHERE 1=1"
	args := []any{}

	if p.Search != "" {
		args = append(args, "%"+p.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (r.name ILIKE $%d OR r.email ILIKE $%d OR r.student_id ILIKE $%d)", n, n, n)
	}
	if p.Department != "" {
		args = append(args, p.Department)
		where += fmt.Sprintf(" AND r.department = $%d", len(args))
	}
	return where, args
}

func (r *ReportRepository) CountStudents(ctx context.Context, p params.QueryParams) (int, error) {
	where, args := studentFilter(p)
	query := `SELECT COUNT(DISTINCT r.user_id) FROM registrations r ` + where

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		logger.Error("ReportRepository:CountStudents:Error:", err)
		return 0, err
	}
	return count, nil
}

// ListStudents returns one aggregated row per student for the requested page.
// MAX() over the snapshot columns is safe: they are identical per student in
// practice, and the grouping only needs a representative value.
func (r *ReportRepository) ListStudents(ctx context.Context, p params.QueryParams) ([]entity.StudentRow, error) {
	where, args := studentFilter(p)
	args = append(args, p.PageSize, p.Offset())

	query := fmt.Sprintf(`
		SELECT
			r.user_id,
			MAX(r.name) AS name,
			MAX(r.email) AS email,
			MAX(r.student_id) AS student_id,
			MAX(r.department) AS department,
			COUNT(*) AS total_registrations,
			COUNT(*) FILTER (WHERE r.status = 'approved') AS approved,
			COUNT(*) FILTER (WHERE r.status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE r.status = 'rejected') AS rejected
		FROM registrations r
		%s
		GROUP BY r.user_id
		ORDER BY MAX(r.name) ASC
		LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	var rows []entity.StudentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.Error("ReportRepository:ListStudents:Error:", err)
		return nil, err
	}
	return rows, nil
}

// ListStudentEvents fetches the registrations of the paged students with
// event summaries joined on, one query for the whole page.
func (r *ReportRepository) ListStudentEvents(ctx context.Context, userIDs []uuid.UUID) ([]entity.StudentEventRow, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT
			r.user_id, r.reference, r.status,
			e.id AS event_id, e.title AS event_title, e.date AS event_date,
			e.time AS event_time, e.category AS event_category
		FROM registrations r
		LEFT JOIN events e ON e.id = r.event_id
		WHERE r.user_id IN (?)
		ORDER BY r.user_id, r.created_at DESC`,
		userIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.SQLx().Rebind(query)

	var rows []entity.StudentEventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.Error("ReportRepository:ListStudentEvents:Error:", err)
		return nil, err
	}
	return rows, nil
}
