package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"campus-events-api/core/constants"
	"campus-events-api/core/errors"
	"campus-events-api/core/logger"
	"campus-events-api/core/utils"
	authRepo "campus-events-api/modules/auth/repository"
	eventRepo "campus-events-api/modules/event/repository"
	notifdto "campus-events-api/modules/notification/dto"
	"campus-events-api/modules/registration/dto"
	"campus-events-api/modules/registration/entity"
	"campus-events-api/modules/registration/repository"

	"github.com/google/uuid"
)

// RecountEnqueuer schedules the background refresh of the cached counter.
type RecountEnqueuer interface {
	EnqueueRecount(eventID uuid.UUID)
}

// DecisionNotifier publishes a notice to the applicant after a review.
type DecisionNotifier interface {
	Create(ctx context.Context, req *notifdto.CreateNotificationRequest) error
}

type RegistrationServiceInterface interface {
	DirectRegister(ctx context.Context, req *dto.DirectRegisterRequest) (*dto.RegistrationResponse, *errors.AppError)
	SubmitRequest(ctx context.Context, req *dto.SubmitRequestRequest) (*dto.RegistrationResponse, *errors.AppError)
	Review(ctx context.Context, organizerID uuid.UUID, req *dto.ReviewRequest) (*entity.Registration, *errors.AppError)
	ListForUser(ctx context.Context, userID string) (*dto.StudentRegistrationsResponse, *errors.AppError)
	ListPendingForOrganizer(ctx context.Context, organizerID string) (*dto.PendingRegistrationsResponse, *errors.AppError)
}

type RegistrationService struct {
	repo     repository.RegistrationRepositoryInterface
	users    authRepo.AuthRepositoryInterface
	events   eventRepo.EventRepositoryInterface
	queue    RecountEnqueuer
	notifier DecisionNotifier
}

func NewRegistrationService(
	repo repository.RegistrationRepositoryInterface,
	users authRepo.AuthRepositoryInterface,
	events eventRepo.EventRepositoryInterface,
	queue RecountEnqueuer,
	notifier DecisionNotifier,
) *RegistrationService {
	return &RegistrationService{
		repo:     repo,
		users:    users,
		events:   events,
		queue:    queue,
		notifier: notifier,
	}
}

// mapWorkflowError translates repository sentinels to the error taxonomy the
// controllers encode into HTTP statuses.
func mapWorkflowError(err error) *errors.AppError {
	switch {
	case stderrors.Is(err, repository.ErrEventNotFound):
		return errors.NewAppError(errors.ErrNotFound, "event not found", err)
	case stderrors.Is(err, repository.ErrRegistrationNotFound):
		return errors.NewAppError(errors.ErrNotFound, "registration not found", err)
	case stderrors.Is(err, repository.ErrEventNotPublished):
		return errors.NewAppError(errors.ErrEventNotPublished, "event is not available for registration", err)
	case stderrors.Is(err, repository.ErrEventFull):
		return errors.NewAppError(errors.ErrEventFull, "event is full", err)
	case stderrors.Is(err, repository.ErrDuplicateRegistration):
		return errors.NewAppError(errors.ErrAlreadyExists, "already registered for this event", err)
	case stderrors.Is(err, repository.ErrNotOwner):
		return errors.NewAppError(errors.ErrForbidden, "unauthorized to manage this registration", err)
	case stderrors.Is(err, repository.ErrNotPending):
		return errors.NewAppError(errors.ErrInvalidStateTransition, "registration has already been decided", err)
	default:
		return errors.NewAppError(errors.ErrInternalServer, "registration operation failed", err)
	}
}

// DirectRegister books a seat immediately, snapshotting applicant details
// from the account.
func (s *RegistrationService) DirectRegister(ctx context.Context, req *dto.DirectRegisterRequest) (*dto.RegistrationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.EventID == "" || req.StudentID == "" || req.UserID == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "eventId, studentId, and userId are required", nil)
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid event id format", err)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid user id format", err)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("RegistrationService:DirectRegister:GetUserByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to resolve user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	reg := &entity.Registration{
		Reference: utils.GenerateReference(),
		EventID:   eventID,
		UserID:    userID,
		StudentID: strings.TrimSpace(req.StudentID),
		Name:      strings.TrimSpace(req.Name),
		Email:     user.Email,
	}
	if reg.Name == "" {
		reg.Name = user.Name
	}
	if user.Phone != nil {
		reg.Phone = *user.Phone
	}
	if user.Department != nil {
		reg.Department = *user.Department
	}

	if err := s.repo.DirectRegister(ctx, reg); err != nil {
		return nil, mapWorkflowError(err)
	}

	return &dto.RegistrationResponse{Registration: reg}, nil
}

// SubmitRequest files a pending registration for organizer review.
func (s *RegistrationService) SubmitRequest(ctx context.Context, req *dto.SubmitRequestRequest) (*dto.RegistrationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	missing := []string{}
	for field, value := range map[string]string{
		"eventId":   req.EventID,
		"studentId": req.StudentID,
		"userId":    req.UserID,
		"name":      req.Name,
		"email":     req.Email,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")), nil)
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid event id format", err)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid user id format", err)
	}

	reg := &entity.Registration{
		Reference:  utils.GenerateReference(),
		EventID:    eventID,
		UserID:     userID,
		StudentID:  strings.TrimSpace(req.StudentID),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      req.Phone,
		Department: req.Department,
	}

	if err := s.repo.SubmitRequest(ctx, reg); err != nil {
		return nil, mapWorkflowError(err)
	}

	// Join the event summary for the response; a read failure here does not
	// undo the committed registration.
	resp := &dto.RegistrationResponse{Registration: reg}
	if event, evErr := s.events.GetByID(ctx, eventID); evErr == nil && event != nil {
		resp.Event = event
	}
	return resp, nil
}

// Review applies an organizer decision to a pending registration.
func (s *RegistrationService) Review(ctx context.Context, organizerID uuid.UUID, req *dto.ReviewRequest) (*entity.Registration, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.RegistrationID == "" || req.Action == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "registration id and action are required", nil)
	}
	if req.Action != dto.ActionApprove && req.Action != dto.ActionReject {
		return nil, errors.NewAppError(errors.ErrInvalidAction, "invalid action, use 'approve' or 'reject'", nil)
	}

	registrationID, err := uuid.Parse(req.RegistrationID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid registration id format", err)
	}

	updated, err := s.repo.Review(ctx, registrationID, organizerID, req.Action == dto.ActionApprove, req.RejectionReason)
	if err != nil {
		return nil, mapWorkflowError(err)
	}

	if s.queue != nil {
		s.queue.EnqueueRecount(updated.EventID)
	}
	s.notifyDecision(ctx, updated)

	return updated, nil
}

// notifyDecision is best effort: a failed notice never fails the review.
func (s *RegistrationService) notifyDecision(ctx context.Context, reg *entity.Registration) {
	if s.notifier == nil {
		return
	}

	title := "Registration approved"
	message := "Your event registration has been approved."
	if reg.Status == entity.StatusRejected {
		title = "Registration rejected"
		message = "Your event registration has been rejected."
		if reg.RejectionReason != "" {
			message = fmt.Sprintf("Your event registration has been rejected: %s", reg.RejectionReason)
		}
	}

	err := s.notifier.Create(ctx, &notifdto.CreateNotificationRequest{
		UserID:  reg.UserID,
		Title:   title,
		Message: message,
		Type:    "registration_decision",
		Data: map[string]any{
			"registration_id": reg.ID.String(),
			"event_id":        reg.EventID.String(),
			"status":          string(reg.Status),
		},
	})
	if err != nil {
		logger.Error("RegistrationService:NotifyDecision:Error:", err, "registration_id", reg.ID)
	}
}

// ListForUser returns a student's history with event summaries, flagging
// entries whose event no longer exists instead of failing.
func (s *RegistrationService) ListForUser(ctx context.Context, userID string) (*dto.StudentRegistrationsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid user id format", err)
	}

	rows, listErr := s.repo.ListByUser(ctx, id)
	if listErr != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list registrations", listErr)
	}

	resp := &dto.StudentRegistrationsResponse{
		Registrations:      make([]dto.StudentRegistration, 0, len(rows)),
		TotalRegistrations: len(rows),
	}
	for _, row := range rows {
		item := dto.StudentRegistration{Registration: row.Registration}
		if row.EventSummary.Missing() {
			item.Note = "Event information not available"
			resp.RegistrationsWithMissingEvents++
		} else {
			summary := row.EventSummary
			item.Event = &summary
			resp.ValidRegistrations++
		}
		resp.Registrations = append(resp.Registrations, item)
	}
	return resp, nil
}

func (s *RegistrationService) ListPendingForOrganizer(ctx context.Context, organizerID string) (*dto.PendingRegistrationsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	id, err := uuid.Parse(organizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid organizer id format", err)
	}

	rows, listErr := s.repo.ListPendingByOrganizer(ctx, id)
	if listErr != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list pending registrations", listErr)
	}

	resp := &dto.PendingRegistrationsResponse{
		PendingRequests: make([]dto.PendingRegistration, 0, len(rows)),
		Count:           len(rows),
	}
	for _, row := range rows {
		summary := row.EventSummary
		resp.PendingRequests = append(resp.PendingRequests, dto.PendingRegistration{
			Registration: row.Registration,
			Event:        &summary,
		})
	}
	return resp, nil
}
