package usecase

import (
	"context"
	"errors"
	"time"

	"facility-booking/internal/converter"
	"facility-booking/internal/delivery/dto"
	"facility-booking/internal/domain/entity"
	"facility-booking/internal/domain/repository"
	"facility-booking/internal/domain/rules"
	"facility-booking/internal/service"
	"facility-booking/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotAuthenticated      = errors.New("sign in from the host app to book a facility")
	ErrPastSlot              = errors.New("please choose a future time slot for today")
	ErrSlotConflict          = errors.New("a booking already exists for this date and time slot")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrUnknownFacility       = errors.New("unknown facility")
	ErrUnknownSlot           = errors.New("unknown time slot")
	ErrSubmissionInterrupted = errors.New("booking was stored but the submission did not complete")
)

const (
	DefaultPageSize = 5
	eventTimeout    = 5 * time.Second
)

type BookingUsecase interface {
	GetCatalog(ctx context.Context) *dto.CatalogResponse
	SubmitBooking(ctx context.Context, viewer *entity.Viewer, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, viewer *entity.Viewer, bookingID string) (*dto.BookingResponse, error)
	SetBookingStatus(ctx context.Context, viewer *entity.Viewer, bookingID string, status string) (*dto.BookingResponse, error)
	ListPage(ctx context.Context, viewer *entity.Viewer, page, pageSize int) (*dto.BookingPageResponse, error)
	GetBooking(ctx context.Context, viewer *entity.Viewer, bookingID string) (*dto.BookingResponse, error)
}

// BookingOptions tunes the facade. Zero values fall back to sensible defaults.
type BookingOptions struct {
	AdminEmail      string
	DefaultPageSize int
	// SubmitLatency is waited out after a booking is committed. It only delays
	// the success report and never gates whether the booking exists.
	SubmitLatency time.Duration
	Now           func() time.Time
}

type bookingUsecase struct {
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	catalog      *entity.Catalog
	auditService service.AuditService
	publisher    service.BookingEventPublisher
	opts         BookingOptions
}

func NewBookingUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	catalog *entity.Catalog,
	auditService service.AuditService,
	publisher service.BookingEventPublisher,
	opts BookingOptions,
) BookingUsecase {
	if opts.DefaultPageSize < 1 {
		opts.DefaultPageSize = DefaultPageSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &bookingUsecase{
		log:          log,
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		auditService: auditService,
		publisher:    publisher,
		opts:         opts,
	}
}

// GetCatalog returns the bookable facilities, slots and the earliest selectable date
func (u *bookingUsecase) GetCatalog(ctx context.Context) *dto.CatalogResponse {
	return &dto.CatalogResponse{
		Facilities: u.catalog.Facilities,
		Slots:      u.catalog.Slots,
		MinDate:    rules.Today(u.opts.Now()),
	}
}

// SubmitBooking validates and stores a new booking.
//
// Checks run in order and the first failure wins:
// 1. Viewer present
// 2. Slot has not started yet (dates before today are clamped to today first)
// 3. No active booking holds the slot (checked and inserted atomically)
//
// Nothing is stored on any rejection.
func (u *bookingUsecase) SubmitBooking(ctx context.Context, viewer *entity.Viewer, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if viewer == nil {
		return nil, ErrNotAuthenticated
	}

	if !u.catalog.HasFacility(req.Facility) {
		return nil, ErrUnknownFacility
	}
	if !u.catalog.HasSlot(req.Slot) {
		return nil, ErrUnknownSlot
	}

	now := u.opts.Now()
	date, err := rules.ClampDate(req.Date, now)
	if err != nil {
		return nil, err
	}

	past, err := rules.IsPastSlot(date, req.Slot, now)
	if err != nil {
		return nil, err
	}
	if past {
		return nil, ErrPastSlot
	}

	booking := &entity.Booking{
		ID:        uuid.New().String(),
		Facility:  req.Facility,
		Date:      date,
		Slot:      req.Slot,
		Notes:     req.Notes,
		Status:    entity.BookingStatusPending,
		User:      viewer.Snapshot(),
		CreatedAt: now,
	}

	if err := u.bookingRepo.InsertIfAvailable(booking); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to insert booking: %+v", err)
		return nil, err
	}

	u.log.Infof("Booking created: id=%s, facility=%s, date=%s, slot=%s, user=%s, stored=%d", booking.ID, booking.Facility, booking.Date, booking.Slot, viewer.ID, u.bookingRepo.Count())

	if err := u.auditService.LogCreate(ctx, viewer, booking); err != nil {
		u.log.Warnf("Failed to audit booking %s (non-fatal): %+v", booking.ID, err)
	}
	u.publish(ctx, service.EventBookingCreate, booking)

	resp := converter.BookingToResponse(booking)

	if u.opts.SubmitLatency > 0 {
		timer := time.NewTimer(u.opts.SubmitLatency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			u.log.Warnf("Submission of booking %s interrupted after commit: %+v", booking.ID, ctx.Err())
			return resp, ErrSubmissionInterrupted
		}
	}

	return resp, nil
}

// CancelBooking moves a booking to Cancelled
func (u *bookingUsecase) CancelBooking(ctx context.Context, viewer *entity.Viewer, bookingID string) (*dto.BookingResponse, error) {
	return u.transition(ctx, viewer, bookingID, entity.BookingStatusCancelled, entity.AuditActionBookingCancel)
}

// SetBookingStatus validates the raw status before touching the store
func (u *bookingUsecase) SetBookingStatus(ctx context.Context, viewer *entity.Viewer, bookingID string, status string) (*dto.BookingResponse, error) {
	next, err := entity.ParseBookingStatus(status)
	if err != nil {
		return nil, err
	}
	return u.transition(ctx, viewer, bookingID, next, entity.AuditActionBookingStatus)
}

// transition only acts on bookings the viewer can see; hidden ones are
// reported as not found, exactly like GetBooking.
func (u *bookingUsecase) transition(ctx context.Context, viewer *entity.Viewer, bookingID string, next entity.BookingStatus, action string) (*dto.BookingResponse, error) {
	current, ok := u.bookingRepo.FindByID(bookingID)
	if !ok || !rules.CanView(viewer, current, u.opts.AdminEmail) {
		u.log.Debugf("Status change for unknown or hidden booking %s ignored", bookingID)
		return nil, ErrBookingNotFound
	}

	updated, previous, err := u.bookingRepo.TransitionStatus(bookingID, next)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			u.log.Debugf("Status change for unknown booking %s ignored", bookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, entity.ErrInvalidTransition):
			return nil, err
		}
		u.log.Warnf("Failed to change status of booking %s: %+v", bookingID, err)
		return nil, err
	}

	if previous == next {
		return converter.BookingToResponse(updated), nil
	}

	u.log.Infof("Booking status changed: id=%s, %s -> %s", bookingID, previous, next)

	if err := u.auditService.LogStatusChange(ctx, viewer, action, updated, previous); err != nil {
		u.log.Warnf("Failed to audit booking %s (non-fatal): %+v", bookingID, err)
	}
	u.publish(ctx, service.EventBookingStatus, updated)

	return converter.BookingToResponse(updated), nil
}

// ListPage returns one page of the bookings the viewer may see
func (u *bookingUsecase) ListPage(ctx context.Context, viewer *entity.Viewer, page, pageSize int) (*dto.BookingPageResponse, error) {
	if pageSize == 0 {
		pageSize = u.opts.DefaultPageSize
	}
	if page == 0 {
		page = 1
	}

	visible := rules.VisibleTo(viewer, u.bookingRepo.FindAll(), u.opts.AdminEmail)

	result, err := pagination.Paginate(visible, pageSize, page)
	if err != nil {
		return nil, err
	}

	return converter.BookingPageToResponse(result), nil
}

// GetBooking returns a single booking if the viewer may see it.
// Bookings hidden from the viewer are reported as not found.
func (u *bookingUsecase) GetBooking(ctx context.Context, viewer *entity.Viewer, bookingID string) (*dto.BookingResponse, error) {
	booking, ok := u.bookingRepo.FindByID(bookingID)
	if !ok || !rules.CanView(viewer, booking, u.opts.AdminEmail) {
		return nil, ErrBookingNotFound
	}
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) publish(ctx context.Context, eventType string, booking *entity.Booking) {
	if u.publisher == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventTimeout)
	defer cancel()

	event := service.BookingEvent{
		Type:       eventType,
		Booking:    *booking,
		OccurredAt: u.opts.Now(),
	}
	if err := u.publisher.Publish(pubCtx, event); err != nil {
		u.log.Warnf("Failed to publish %s for booking %s (non-fatal): %+v", eventType, booking.ID, err)
	}
}
