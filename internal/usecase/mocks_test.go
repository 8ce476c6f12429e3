package usecase

import (
	"context"
	"time"

	"facility-booking/internal/domain/entity"
	"facility-booking/internal/service"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) LogCreate(ctx context.Context, actor *entity.Viewer, booking *entity.Booking) error {
	args := m.Called(ctx, actor, booking)
	return args.Error(0)
}

func (m *mockAuditService) LogStatusChange(ctx context.Context, actor *entity.Viewer, action string, booking *entity.Booking, oldStatus entity.BookingStatus) error {
	args := m.Called(ctx, actor, action, booking, oldStatus)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event service.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Save(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *mockSessionStore) Exists(ctx context.Context, userID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSessionStore) Revoke(ctx context.Context, userID, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return m.Called(db, log).Error(0)
}

func (m *mockAuditLogRepository) FindByBookingID(db *gorm.DB, bookingID string) ([]entity.AuditLog, error) {
	args := m.Called(db, bookingID)
	logs, _ := args.Get(0).([]entity.AuditLog)
	return logs, args.Error(1)
}
