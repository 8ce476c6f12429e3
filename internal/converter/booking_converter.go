package converter

import (
	"facility-booking/internal/delivery/dto"
	"facility-booking/internal/domain/entity"
	"facility-booking/pkg/pagination"
)

// pageWindowWidth is how many page numbers the list pager shows at once
const pageWindowWidth = 5

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:       booking.ID,
		Facility: booking.Facility,
		Date:     booking.Date,
		Slot:     booking.Slot,
		Notes:    booking.Notes,
		Status:   string(booking.Status),
		User: dto.BookingUserResponse{
			ID:    booking.User.ID,
			Name:  booking.User.Name,
			Email: booking.User.Email,
		},
		CreatedAt: booking.CreatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

// BookingPageToResponse converts a page of bookings including the pager strip
func BookingPageToResponse(page pagination.Page[entity.Booking]) *dto.BookingPageResponse {
	return &dto.BookingPageResponse{
		Bookings:     BookingsToResponses(page.Items),
		Page:         page.Page,
		PageSize:     page.PageSize,
		Total:        page.Total,
		TotalPages:   page.TotalPages,
		Range:        page.RangeLabel(),
		Pages:        pagination.Window(page.Page, page.TotalPages, pageWindowWidth),
		ResetToFirst: page.ResetToFirst,
	}
}
