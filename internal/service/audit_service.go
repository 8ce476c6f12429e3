package service

import (
	"context"

	"facility-booking/internal/domain/entity"
	"facility-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogCreate(ctx context.Context, actor *entity.Viewer, booking *entity.Booking) error
	LogStatusChange(ctx context.Context, actor *entity.Viewer, action string, booking *entity.Booking, oldStatus entity.BookingStatus) error
}

// auditService writes booking commands to Postgres when a database is
// configured and falls back to the structured log otherwise.
type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, actor *entity.Viewer, booking *entity.Booking) error {
	metadata := entity.JSON{
		"facility":  booking.Facility,
		"date":      booking.Date,
		"slot":      booking.Slot,
		"old_value": nil,
		"new_value": string(booking.Status),
	}

	return s.write(ctx, actor, entity.AuditActionBookingCreate, booking.ID, metadata)
}

// LogStatusChange logs a cancel or status update with old and new values
func (s *auditService) LogStatusChange(ctx context.Context, actor *entity.Viewer, action string, booking *entity.Booking, oldStatus entity.BookingStatus) error {
	metadata := entity.JSON{
		"old_value": string(oldStatus),
		"new_value": string(booking.Status),
	}

	return s.write(ctx, actor, action, booking.ID, metadata)
}

func (s *auditService) write(ctx context.Context, actor *entity.Viewer, action, bookingID string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		Action:    action,
		BookingID: bookingID,
		Metadata:  metadata,
	}
	if actor != nil {
		auditLog.ActorID = actor.ID
	}

	if s.db == nil {
		s.log.WithFields(logrus.Fields{
			"action":     auditLog.Action,
			"booking_id": auditLog.BookingID,
			"actor_id":   auditLog.ActorID,
			"metadata":   map[string]interface{}(metadata),
		}).Info("audit")
		return nil
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
