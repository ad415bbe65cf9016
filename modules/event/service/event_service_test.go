package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"campus-events-api/core/errors"
	authEntity "campus-events-api/modules/auth/entity"
	"campus-events-api/modules/event/dto"
	"campus-events-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events map[uuid.UUID]*entity.Event
	slugs  map[string]bool
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events: map[uuid.UUID]*entity.Event{},
		slugs:  map[string]bool{},
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entity.Event) error {
	event.ID = uuid.New()
	stored := *event
	f.events[event.ID] = &stored
	f.slugs[event.Slug] = true
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	copied := *ev
	return &copied, nil
}

func (f *fakeEventRepo) List(ctx context.Context, category, status, organizer string) ([]entity.Event, error) {
	var out []entity.Event
	for _, ev := range f.events {
		if category != "" && ev.Category != category {
			continue
		}
		if status != "" && string(ev.Status) != status {
			continue
		}
		out = append(out, *ev)
	}
	return out, nil
}

func (f *fakeEventRepo) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]entity.Event, error) {
	var out []entity.Event
	for _, ev := range f.events {
		if ev.OrganizerID == organizerID {
			out = append(out, *ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error {
	if ev, ok := f.events[id]; ok {
		ev.Status = status
	}
	return nil
}

func (f *fakeEventRepo) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	if ev, ok := f.events[id]; ok {
		ev.Image = imageURL
	}
	return nil
}

func (f *fakeEventRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return f.slugs[slug], nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.events, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*authEntity.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *authEntity.User) error { return nil }
func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*authEntity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*authEntity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeUserRepo) DeleteUser(ctx context.Context, id uuid.UUID) error      { return nil }

type fakeUploader struct {
	keys []string
}

func (f *fakeUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	f.keys = append(f.keys, key)
	return "https://bucket.s3.region.amazonaws.com/" + key, nil
}

func setupEvents(t *testing.T) (*EventService, *fakeEventRepo, *fakeUserRepo, uuid.UUID) {
	t.Helper()
	repo := newFakeEventRepo()
	organizerID := uuid.New()
	users := &fakeUserRepo{users: map[uuid.UUID]*authEntity.User{
		organizerID: {ID: organizerID, Name: "Org", Role: authEntity.RoleOrganizer},
	}}
	return NewEventService(repo, users, &fakeUploader{}), repo, users, organizerID
}

func createRequest(organizerID uuid.UUID) *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:        "AI Research Night",
		Description:  "Lightning talks",
		Date:         "2026-11-02",
		Time:         "18:30",
		EndTime:      "21:00",
		Location:     "Lab 4",
		Category:     "Technology",
		Organizer:    "CS Club",
		OrganizerID:  organizerID.String(),
		Capacity:     80,
		ContactEmail: "cs@campus.edu",
		ContactPhone: "0123456789",
	}
}

func TestCreateEvent_AppliesDefaults(t *testing.T) {
	svc, _, _, organizerID := setupEvents(t)

	event, appErr := svc.CreateEvent(context.Background(), createRequest(organizerID))
	require.Nil(t, appErr)
	assert.Equal(t, entity.StatusDraft, event.Status)
	assert.Equal(t, "Free", event.Price)
	assert.Equal(t, "ai-research-night", event.Slug)
	assert.Equal(t, 0, event.RegistrationCount)
}

func TestCreateEvent_UniqueSlugSuffix(t *testing.T) {
	svc, _, _, organizerID := setupEvents(t)

	first, appErr := svc.CreateEvent(context.Background(), createRequest(organizerID))
	require.Nil(t, appErr)
	second, appErr := svc.CreateEvent(context.Background(), createRequest(organizerID))
	require.Nil(t, appErr)

	assert.Equal(t, "ai-research-night", first.Slug)
	assert.Equal(t, "ai-research-night-2", second.Slug)
}

func TestCreateEvent_RejectsStudentOrganizer(t *testing.T) {
	svc, _, users, _ := setupEvents(t)

	studentID := uuid.New()
	users.users[studentID] = &authEntity.User{ID: studentID, Role: authEntity.RoleStudent}

	_, appErr := svc.CreateEvent(context.Background(), createRequest(studentID))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestCreateEvent_UnknownOrganizer(t *testing.T) {
	svc, _, _, _ := setupEvents(t)

	_, appErr := svc.CreateEvent(context.Background(), createRequest(uuid.New()))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestGetEvent_InvalidID(t *testing.T) {
	svc, _, _, _ := setupEvents(t)

	_, appErr := svc.GetEvent(context.Background(), "definitely-not-a-uuid")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestGetEvent_NotFound(t *testing.T) {
	svc, _, _, _ := setupEvents(t)

	_, appErr := svc.GetEvent(context.Background(), uuid.NewString())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestUpdateStatus_OwnerOnly(t *testing.T) {
	svc, _, _, organizerID := setupEvents(t)

	event, appErr := svc.CreateEvent(context.Background(), createRequest(organizerID))
	require.Nil(t, appErr)

	_, appErr = svc.UpdateStatus(context.Background(), event.ID.String(), uuid.New(), "published")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	updated, appErr := svc.UpdateStatus(context.Background(), event.ID.String(), organizerID, "published")
	require.Nil(t, appErr)
	assert.Equal(t, entity.StatusPublished, updated.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _, organizerID := setupEvents(t)

	event, appErr := svc.CreateEvent(context.Background(), createRequest(organizerID))
	require.Nil(t, appErr)

	_, appErr = svc.UpdateStatus(context.Background(), event.ID.String(), organizerID, "archived")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestUploadImage_StoresURLOnEvent(t *testing.T) {
	svc, repo, _, organizerID := setupEvents(t)

	event, appErr := svc.CreateEvent(context.Background(), createRequest(organizerID))
	require.Nil(t, appErr)

	resp, appErr := svc.UploadImage(context.Background(), event.ID.String(), organizerID,
		"poster.png", "image/png", strings.NewReader("fake-bytes"))
	require.Nil(t, appErr)
	assert.Contains(t, resp.URL, "events/"+event.ID.String()+"/poster.png")
	assert.Equal(t, resp.URL, repo.events[event.ID].Image)
}
