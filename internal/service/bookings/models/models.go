package models

import (
	"errors"
	"time"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// ConfirmBookingRequest запрос на подтверждение бронирования
type ConfirmBookingRequest struct {
	UserID int64 `json:"userId"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetResourceBookingsRequest запрос на получение бронирований ресурса
type GetResourceBookingsRequest struct {
	ResourceID      int64          `json:"resourceId"`
	Window          *domain.Window `json:"window,omitempty"`          // Окно пересечения (опционально)
	Status          *string        `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool           `json:"includeInactive,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetResourceBookingsRequest) ToDomainFilter() (domain.ResourceBookingsFilter, error) {
	filter := domain.ResourceBookingsFilter{
		ResourceID:      r.ResourceID,
		Window:          r.Window,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	ResourceID int64  `json:"resourceId"`
	UserID     int64  `json:"userId"`
	Start      string `json:"start"` // RFC 3339
	End        string `json:"end"`   // RFC 3339
	Spaces     int    `json:"spaces"`
	Status     string `json:"status"`

	Reference *string `json:"reference,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		ResourceID:         b.ResourceID,
		UserID:             b.UserID,
		Start:              b.Window.Start.Format(time.RFC3339),
		End:                b.Window.End.Format(time.RFC3339),
		Spaces:             b.Spaces,
		Status:             string(b.Status),
		Reference:          b.Reference,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status, err := domain.ParseBookingStatus(s)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return status, nil
}
