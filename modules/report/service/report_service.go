package service

import (
	"context"
	"sort"

	"campus-events-api/core/constants"
	"campus-events-api/core/errors"
	"campus-events-api/core/params"
	"campus-events-api/modules/report/dto"
	"campus-events-api/modules/report/repository"

	"github.com/google/uuid"
)

type ReportServiceInterface interface {
	OrganizersReport(ctx context.Context) (*dto.OrganizersReportResponse, *errors.AppError)
	StudentsReport(ctx context.Context, p params.QueryParams) (*dto.StudentsReportResponse, *errors.AppError)
}

type ReportService struct {
	repo repository.ReportRepositoryInterface
}

func NewReportService(repo repository.ReportRepositoryInterface) *ReportService {
	return &ReportService{repo: repo}
}

// OrganizersReport groups the flat event rows per organizer and orders
// organizers by event count, busiest first.
func (s *ReportService) OrganizersReport(ctx context.Context) (*dto.OrganizersReportResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	rows, err := s.repo.ListOrganizerEvents(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to build organizers report", err)
	}

	byOrganizer := map[uuid.UUID]*dto.OrganizerReport{}
	order := []uuid.UUID{}
	for _, row := range rows {
		report, ok := byOrganizer[row.OrganizerID]
		if !ok {
			report = &dto.OrganizerReport{
				OrganizerID: row.OrganizerID,
				Name:        row.OrganizerName,
				Email:       row.OrganizerEmail,
				Events:      []dto.OrganizerReportEvent{},
			}
			byOrganizer[row.OrganizerID] = report
			order = append(order, row.OrganizerID)
		}
		report.Events = append(report.Events, dto.OrganizerReportEvent{
			ID:                row.EventID,
			Title:             row.Title,
			Date:              row.Date,
			Time:              row.Time,
			Location:          row.Location,
			Category:          row.Category,
			Status:            row.Status,
			RegistrationCount: row.RegistrationCount,
			Capacity:          row.Capacity,
		})
		report.TotalEvents++
		report.TotalRegistrations += row.RegistrationCount
	}

	organizers := make([]dto.OrganizerReport, 0, len(order))
	for _, id := range order {
		organizers = append(organizers, *byOrganizer[id])
	}
	sort.SliceStable(organizers, func(i, j int) bool {
		return organizers[i].TotalEvents > organizers[j].TotalEvents
	})

	return &dto.OrganizersReportResponse{
		Organizers:      organizers,
		TotalOrganizers: len(organizers),
	}, nil
}

// StudentsReport pages the per-student ledger aggregates and attaches each
// paged student's registrations with event summaries.
func (s *ReportService) StudentsReport(ctx context.Context, p params.QueryParams) (*dto.StudentsReportResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	total, err := s.repo.CountStudents(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to count students", err)
	}

	rows, err := s.repo.ListStudents(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to build students report", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	eventRows, err := s.repo.ListStudentEvents(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load student events", err)
	}

	eventsByUser := map[uuid.UUID][]dto.StudentReportEvent{}
	for _, row := range eventRows {
		eventsByUser[row.UserID] = append(eventsByUser[row.UserID], dto.StudentReportEvent{
			ID:        row.EventID,
			Title:     row.Title,
			Date:      row.Date,
			Time:      row.Time,
			Category:  row.Category,
			Reference: row.Reference,
			Status:    row.Status,
		})
	}

	students := make([]dto.StudentReport, 0, len(rows))
	for _, row := range rows {
		events := eventsByUser[row.UserID]
		if events == nil {
			events = []dto.StudentReportEvent{}
		}
		students = append(students, dto.StudentReport{
			UserID:             row.UserID,
			Name:               row.Name,
			Email:              row.Email,
			StudentID:          row.StudentID,
			Department:         row.Department,
			TotalRegistrations: row.TotalRegistrations,
			Approved:           row.Approved,
			Pending:            row.Pending,
			Rejected:           row.Rejected,
			Events:             events,
		})
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + p.PageSize - 1) / p.PageSize
	}

	return &dto.StudentsReportResponse{
		Students: students,
		Pagination: dto.Pagination{
			CurrentPage:   p.PageNumber,
			TotalPages:    totalPages,
			TotalStudents: total,
			HasNext:       p.PageNumber < totalPages,
			HasPrev:       p.PageNumber > 1 && total > 0,
		},
	}, nil
}
