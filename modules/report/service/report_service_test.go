package service

import (
	"context"
	"testing"

	"campus-events-api/core/params"
	"campus-events-api/modules/report/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	organizerRows []entity.OrganizerEventRow
	studentRows   []entity.StudentRow
	studentEvents []entity.StudentEventRow
	totalStudents int
}

func (f *fakeReportRepo) ListOrganizerEvents(ctx context.Context) ([]entity.OrganizerEventRow, error) {
	return f.organizerRows, nil
}

func (f *fakeReportRepo) CountStudents(ctx context.Context, p params.QueryParams) (int, error) {
	return f.totalStudents, nil
}

func (f *fakeReportRepo) ListStudents(ctx context.Context, p params.QueryParams) ([]entity.StudentRow, error) {
	return f.studentRows, nil
}

func (f *fakeReportRepo) ListStudentEvents(ctx context.Context, userIDs []uuid.UUID) ([]entity.StudentEventRow, error) {
	return f.studentEvents, nil
}

func TestOrganizersReport_GroupsAndOrdersByEventCount(t *testing.T) {
	busy := uuid.New()
	quiet := uuid.New()
	rows := []entity.OrganizerEventRow{
		{OrganizerID: quiet, OrganizerName: "Quiet Org", EventID: uuid.New(), Title: "One", RegistrationCount: 5},
		{OrganizerID: busy, OrganizerName: "Busy Org", EventID: uuid.New(), Title: "A", RegistrationCount: 10},
		{OrganizerID: busy, OrganizerName: "Busy Org", EventID: uuid.New(), Title: "B", RegistrationCount: 20},
	}
	svc := NewReportService(&fakeReportRepo{organizerRows: rows})

	resp, appErr := svc.OrganizersReport(context.Background())
	require.Nil(t, appErr)
	require.Equal(t, 2, resp.TotalOrganizers)

	first := resp.Organizers[0]
	assert.Equal(t, "Busy Org", first.Name)
	assert.Equal(t, 2, first.TotalEvents)
	assert.Equal(t, 30, first.TotalRegistrations)
	assert.Len(t, first.Events, 2)

	second := resp.Organizers[1]
	assert.Equal(t, "Quiet Org", second.Name)
	assert.Equal(t, 1, second.TotalEvents)
}

func TestOrganizersReport_Empty(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	resp, appErr := svc.OrganizersReport(context.Background())
	require.Nil(t, appErr)
	assert.Equal(t, 0, resp.TotalOrganizers)
	assert.Empty(t, resp.Organizers)
}

func TestStudentsReport_PaginationEnvelope(t *testing.T) {
	userID := uuid.New()
	repo := &fakeReportRepo{
		totalStudents: 25,
		studentRows: []entity.StudentRow{
			{UserID: userID, Name: "An Pham", Email: "an@campus.edu", TotalRegistrations: 3, Approved: 2, Pending: 1},
		},
	}
	svc := NewReportService(repo)

	resp, appErr := svc.StudentsReport(context.Background(), params.QueryParams{PageNumber: 2, PageSize: 10})
	require.Nil(t, appErr)

	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 25, resp.Pagination.TotalStudents)
	assert.True(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)

	require.Len(t, resp.Students, 1)
	assert.Equal(t, "An Pham", resp.Students[0].Name)
	// Events defaults to an empty slice, never null in the JSON.
	assert.NotNil(t, resp.Students[0].Events)
}

func TestStudentsReport_LastPageHasNoNext(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{totalStudents: 20})

	resp, appErr := svc.StudentsReport(context.Background(), params.QueryParams{PageNumber: 2, PageSize: 10})
	require.Nil(t, appErr)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.False(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
}

func TestStudentsReport_EmptyLedger(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	resp, appErr := svc.StudentsReport(context.Background(), params.QueryParams{PageNumber: 1, PageSize: 10})
	require.Nil(t, appErr)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
	assert.False(t, resp.Pagination.HasNext)
	assert.False(t, resp.Pagination.HasPrev)
	assert.Empty(t, resp.Students)
}

func TestStudentsReport_AttachesEvents(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()
	title := "Hackathon"
	repo := &fakeReportRepo{
		totalStudents: 1,
		studentRows:   []entity.StudentRow{{UserID: userID, Name: "An Pham"}},
		studentEvents: []entity.StudentEventRow{
			{UserID: userID, Reference: "REF0000001", Status: "approved", EventID: &eventID, Title: &title},
		},
	}
	svc := NewReportService(repo)

	resp, appErr := svc.StudentsReport(context.Background(), params.QueryParams{PageNumber: 1, PageSize: 10})
	require.Nil(t, appErr)
	require.Len(t, resp.Students, 1)
	require.Len(t, resp.Students[0].Events, 1)
	assert.Equal(t, "Hackathon", *resp.Students[0].Events[0].Title)
	assert.Equal(t, "REF0000001", resp.Students[0].Events[0].Reference)
}
