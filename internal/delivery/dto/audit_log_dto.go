package dto

import (
	"time"

	"facility-booking/internal/domain/entity"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	ActorID   string      `json:"actor_id,omitempty"`
	Action    string      `json:"action"`
	BookingID string      `json:"booking_id"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
