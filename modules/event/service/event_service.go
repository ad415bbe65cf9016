package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"campus-events-api/core/constants"
	"campus-events-api/core/errors"
	"campus-events-api/core/logger"
	"campus-events-api/core/storage"
	authRepo "campus-events-api/modules/auth/repository"
	authentity "campus-events-api/modules/auth/entity"
	"campus-events-api/modules/event/dto"
	"campus-events-api/modules/event/entity"
	"campus-events-api/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*entity.Event, *errors.AppError)
	ListEvents(ctx context.Context, filter dto.ListEventsFilter) ([]entity.Event, *errors.AppError)
	GetEvent(ctx context.Context, id string) (*entity.Event, *errors.AppError)
	ListByOrganizer(ctx context.Context, organizerID string) ([]entity.Event, *errors.AppError)
	UpdateStatus(ctx context.Context, eventID string, callerID uuid.UUID, status string) (*entity.Event, *errors.AppError)
	UploadImage(ctx context.Context, eventID string, callerID uuid.UUID, filename, contentType string, body io.Reader) (*dto.UploadImageResponse, *errors.AppError)
}

type EventService struct {
	repo     repository.EventRepositoryInterface
	users    authRepo.AuthRepositoryInterface
	uploader storage.Uploader
}

func NewEventService(repo repository.EventRepositoryInterface, users authRepo.AuthRepositoryInterface, uploader storage.Uploader) *EventService {
	return &EventService{repo: repo, users: users, uploader: uploader}
}

// CreateEvent validates, resolves the organizer, and inserts. A failure after
// the insert deletes the new row before the error is surfaced.
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*entity.Event, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	organizerID, err := uuid.Parse(req.OrganizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid organizer id format", err)
	}

	organizer, err := s.users.GetUserByID(ctx, organizerID)
	if err != nil {
		logger.Error("EventService:CreateEvent:GetUserByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to resolve organizer", err)
	}
	if organizer == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "organizer user not found", nil)
	}
	if organizer.Role != authentity.RoleOrganizer && organizer.Role != authentity.RoleAdmin {
		return nil, errors.NewAppError(errors.ErrForbidden, "account is not an organizer", nil)
	}

	status := req.Status
	if status == "" {
		status = string(entity.StatusDraft)
	}
	price := req.Price
	if price == "" {
		price = "Free"
	}

	requirements := make([]string, 0, len(req.Requirements))
	for _, r := range req.Requirements {
		requirements = append(requirements, strings.TrimSpace(r))
	}

	event := &entity.Event{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Date:         req.Date,
		Time:         req.Time,
		EndTime:      req.EndTime,
		Location:     strings.TrimSpace(req.Location),
		Category:     req.Category,
		Organizer:    strings.TrimSpace(req.Organizer),
		OrganizerID:  organizerID,
		Capacity:     req.Capacity,
		Price:        price,
		Requirements: requirements,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Image:        req.Image,
		Status:       entity.EventStatus(status),
	}

	eventSlug, slugErr := s.uniqueSlug(ctx, event.Title)
	if slugErr != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate event slug", slugErr)
	}
	event.Slug = eventSlug

	if err := s.repo.Create(ctx, event); err != nil {
		logger.Error("EventService:CreateEvent:Create:Error:", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create event", err)
	}

	// Re-read so the response reflects exactly what was committed. If this
	// fails the event is deleted again: no partially-committed event may
	// remain observable.
	created, err := s.repo.GetByID(ctx, event.ID)
	if err != nil || created == nil {
		logger.Error("EventService:CreateEvent:Reload:Error:", err, "event_id", event.ID)
		if delErr := s.repo.Delete(ctx, event.ID); delErr != nil {
			logger.Error("EventService:CreateEvent:CompensatingDelete:Error:", delErr, "event_id", event.ID)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load created event", err)
	}

	return created, nil
}

func (s *EventService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	candidate := base
	for i := 2; ; i++ {
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *EventService) ListEvents(ctx context.Context, filter dto.ListEventsFilter) ([]entity.Event, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	events, err := s.repo.List(ctx, filter.Category, filter.Status, filter.Organizer)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list events", err)
	}
	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entity.Event, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid event id format", err)
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return event, nil
}

func (s *EventService) ListByOrganizer(ctx context.Context, organizerID string) ([]entity.Event, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	id, err := uuid.Parse(organizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid organizer id format", err)
	}

	events, listErr := s.repo.ListByOrganizer(ctx, id)
	if listErr != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list organizer events", listErr)
	}
	return events, nil
}

// UpdateStatus moves an event through its lifecycle. Owner only.
func (s *EventService) UpdateStatus(ctx context.Context, eventID string, callerID uuid.UUID, status string) (*entity.Event, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if !entity.ValidStatus(status) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid status", nil)
	}

	event, appErr := s.GetEvent(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if event.OrganizerID != callerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "not the organizer of this event", nil)
	}

	if err := s.repo.UpdateStatus(ctx, event.ID, entity.EventStatus(status)); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update event status", err)
	}
	event.Status = entity.EventStatus(status)
	return event, nil
}

// UploadImage stores the poster in S3 and records its URL on the event.
func (s *EventService) UploadImage(ctx context.Context, eventID string, callerID uuid.UUID, filename, contentType string, body io.Reader) (*dto.UploadImageResponse, *errors.AppError) {
	event, appErr := s.GetEvent(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if event.OrganizerID != callerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "not the organizer of this event", nil)
	}
	if s.uploader == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "object storage is not configured", nil)
	}

	key := fmt.Sprintf("events/%s/%s", event.ID, filename)
	url, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to upload image", err)
	}

	if err := s.repo.UpdateImage(ctx, event.ID, url); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to save image url", err)
	}

	return &dto.UploadImageResponse{EventID: event.ID, URL: url}, nil
}
