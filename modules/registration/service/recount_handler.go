package service

import (
	"context"
	"encoding/json"
	"fmt"

	"campus-events-api/core/logger"
	"campus-events-api/core/queue"

	"github.com/hibiken/asynq"
)

// HandleRecountTask is the asynq handler for registration:recount tasks. It
// re-derives the cached registration_count on the event from the ledger.
func (s *RegistrationService) HandleRecountTask(ctx context.Context, task *asynq.Task) error {
	var payload queue.RecountPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// A malformed payload never becomes valid; do not retry.
		logger.Error("RegistrationService:HandleRecountTask:Unmarshal:Error:", err)
		return fmt.Errorf("unmarshal recount payload: %w: %s", asynq.SkipRetry, err)
	}

	if err := s.repo.RecountEvent(ctx, payload.EventID); err != nil {
		logger.Error("RegistrationService:HandleRecountTask:Recount:Error:", err, "event_id", payload.EventID)
		return err
	}

	logger.Debug("RegistrationService:HandleRecountTask:Done", "event_id", payload.EventID)
	return nil
}
