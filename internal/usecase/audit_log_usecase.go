package usecase

import (
	"context"
	"errors"

	"facility-booking/internal/converter"
	"facility-booking/internal/delivery/dto"
	"facility-booking/internal/domain/entity"
	"facility-booking/internal/domain/repository"
	"facility-booking/internal/domain/rules"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditTrailDisabled = errors.New("audit trail is not enabled")
)

// AuditLogUsecase reads the recorded command history of a booking
type AuditLogUsecase interface {
	GetBookingHistory(ctx context.Context, viewer *entity.Viewer, bookingID string) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
	bookingRepo  repository.BookingRepository
	adminEmail   string
}

// NewAuditLogUsecase accepts a nil db; history is then reported as disabled.
func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
	bookingRepo repository.BookingRepository,
	adminEmail string,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
		bookingRepo:  bookingRepo,
		adminEmail:   adminEmail,
	}
}

func (u *auditLogUsecase) GetBookingHistory(ctx context.Context, viewer *entity.Viewer, bookingID string) (*dto.AuditLogListResponse, error) {
	booking, ok := u.bookingRepo.FindByID(bookingID)
	if !ok || !rules.CanView(viewer, booking, u.adminEmail) {
		return nil, ErrBookingNotFound
	}

	if u.db == nil {
		return nil, ErrAuditTrailDisabled
	}

	logs, err := u.auditLogRepo.FindByBookingID(u.db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find audit logs for booking %s: %+v", bookingID, err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
