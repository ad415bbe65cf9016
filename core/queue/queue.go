// Package queue wraps asynq for background work. The only task today is the
// ledger recount that refreshes the denormalized registration counter on
// events after review decisions.
package queue

import (
	"encoding/json"
	"fmt"

	"campus-events-api/core/config"
	"campus-events-api/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeRegistrationRecount = "registration:recount"

type RecountPayload struct {
	EventID uuid.UUID `json:"event_id"`
}

type Client struct {
	client *asynq.Client
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{client: asynq.NewClient(redisOpt(cfg))}
}

// EnqueueRecount schedules a counter refresh for the given event. Failures
// are logged, not surfaced: the counter is display-only and the workflow has
// already committed its own consistent update.
func (c *Client) EnqueueRecount(eventID uuid.UUID) {
	payload, err := json.Marshal(RecountPayload{EventID: eventID})
	if err != nil {
		logger.Error("Queue:EnqueueRecount:Marshal:Error:", err)
		return
	}

	task := asynq.NewTask(TypeRegistrationRecount, payload, asynq.MaxRetry(3))
	if _, err := c.client.Enqueue(task); err != nil {
		logger.Error("Queue:EnqueueRecount:Enqueue:Error:", err, "event_id", eventID)
		return
	}
	logger.Debug("Queue:EnqueueRecount:Enqueued", "event_id", eventID)
}

func (c *Client) Close() error {
	return c.client.Close()
}

// NewServer builds the asynq worker that processes queued tasks. Handlers are
// registered by the modules that own the task types.
func NewServer(cfg config.RedisConfig) *asynq.Server {
	return asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: 5,
	})
}
