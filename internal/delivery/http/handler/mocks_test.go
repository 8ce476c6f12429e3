package handler

import (
	"context"

	"facility-booking/internal/delivery/dto"
	"facility-booking/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type mockBookingUsecase struct {
	mock.Mock
}

func (m *mockBookingUsecase) GetCatalog(ctx context.Context) *dto.CatalogResponse {
	args := m.Called(ctx)
	return args.Get(0).(*dto.CatalogResponse)
}

func (m *mockBookingUsecase) SubmitBooking(ctx context.Context, viewer *entity.Viewer, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	args := m.Called(ctx, viewer, req)
	resp, _ := args.Get(0).(*dto.BookingResponse)
	return resp, args.Error(1)
}

func (m *mockBookingUsecase) CancelBooking(ctx context.Context, viewer *entity.Viewer, bookingID string) (*dto.BookingResponse, error) {
	args := m.Called(ctx, viewer, bookingID)
	resp, _ := args.Get(0).(*dto.BookingResponse)
	return resp, args.Error(1)
}

func (m *mockBookingUsecase) SetBookingStatus(ctx context.Context, viewer *entity.Viewer, bookingID string, status string) (*dto.BookingResponse, error) {
	args := m.Called(ctx, viewer, bookingID, status)
	resp, _ := args.Get(0).(*dto.BookingResponse)
	return resp, args.Error(1)
}

func (m *mockBookingUsecase) ListPage(ctx context.Context, viewer *entity.Viewer, page, pageSize int) (*dto.BookingPageResponse, error) {
	args := m.Called(ctx, viewer, page, pageSize)
	resp, _ := args.Get(0).(*dto.BookingPageResponse)
	return resp, args.Error(1)
}

func (m *mockBookingUsecase) GetBooking(ctx context.Context, viewer *entity.Viewer, bookingID string) (*dto.BookingResponse, error) {
	args := m.Called(ctx, viewer, bookingID)
	resp, _ := args.Get(0).(*dto.BookingResponse)
	return resp, args.Error(1)
}

type mockSessionUsecase struct {
	mock.Mock
}

func (m *mockSessionUsecase) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.TokenResponse)
	return resp, args.Error(1)
}

func (m *mockSessionUsecase) EndSession(ctx context.Context, viewer *entity.Viewer, tokenID string) error {
	args := m.Called(ctx, viewer, tokenID)
	return args.Error(0)
}

func (m *mockSessionUsecase) CurrentViewer(ctx context.Context, viewer *entity.Viewer) *dto.ViewerResponse {
	args := m.Called(ctx, viewer)
	resp, _ := args.Get(0).(*dto.ViewerResponse)
	return resp
}
