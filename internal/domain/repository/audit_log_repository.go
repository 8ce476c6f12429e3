package repository

import (
	"facility-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByBookingID(db *gorm.DB, bookingID string) ([]entity.AuditLog, error)
}
