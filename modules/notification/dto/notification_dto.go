package dto

import "github.com/google/uuid"

type CreateNotificationRequest struct {
	UserID  uuid.UUID      `json:"user_id"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Data    map[string]any `json:"data"`
}

type NotificationListResponse struct {
	Notifications any `json:"notifications"`
	Total         int `json:"total"`
	Unread        int `json:"unread"`
}
