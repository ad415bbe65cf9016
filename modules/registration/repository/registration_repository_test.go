package repository

import (
	"context"
	"regexp"
	"testing"

	"campus-events-api/core/database"
	"campus-events-api/modules/registration/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*RegistrationRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := database.New(sqlx.NewDb(mockDB, "sqlmock"))
	return NewRegistrationRepository(&db), mock
}

func TestSubmitRequest_LocksEventAndInsertsPending(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID := uuid.New()
	userID := uuid.New()
	regID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, capacity FROM events WHERE id = $1 FOR UPDATE`)).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "capacity"}).AddRow("published", 50))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(eventID, "STU-1", userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = 'approved'`)).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO registrations`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(regID))
	mock.ExpectCommit()

	reg := &entity.Registration{
		Reference: "REF1234567",
		EventID:   eventID,
		UserID:    userID,
		StudentID: "STU-1",
		Name:      "Student One",
		Email:     "one@campus.edu",
	}
	err := repo.SubmitRequest(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, reg.Status)
	assert.Equal(t, regID, reg.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitRequest_FullEventRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, capacity FROM events WHERE id = $1 FOR UPDATE`)).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "capacity"}).AddRow("published", 2))
	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	reg := &entity.Registration{EventID: eventID, UserID: userID, StudentID: "STU-1"}
	err := repo.SubmitRequest(context.Background(), reg)
	assert.ErrorIs(t, err, ErrEventFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitRequest_DraftEventRejected(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, capacity FROM events WHERE id = $1 FOR UPDATE`)).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "capacity"}).AddRow("draft", 50))
	mock.ExpectRollback()

	err := repo.SubmitRequest(context.Background(), &entity.Registration{EventID: eventID})
	assert.ErrorIs(t, err, ErrEventNotPublished)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReview_AlreadyDecidedFailsPendingCheck(t *testing.T) {
	repo, mock := newMockRepo(t)
	regID := uuid.New()
	eventID := uuid.New()
	organizerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT event_id FROM registrations WHERE id = $1`)).
		WithArgs(regID).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(eventID))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT organizer_id, capacity FROM events WHERE id = $1 FOR UPDATE`)).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"organizer_id", "capacity"}).AddRow(organizerID, 10))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM registrations WHERE id = $1 FOR UPDATE`)).
		WithArgs(regID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("approved"))
	mock.ExpectRollback()

	_, err := repo.Review(context.Background(), regID, organizerID, true, "")
	assert.ErrorIs(t, err, ErrNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecountEvent_SetsCounterFromLedger(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID := uuid.New()

	mock.ExpectExec(`UPDATE events`).
		WithArgs(eventID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecountEvent(context.Background(), eventID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
