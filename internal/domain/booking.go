package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition возвращается при недопустимой смене статуса бронирования
var ErrInvalidTransition = errors.New("domain: invalid booking status transition")

// ErrUnknownStatus возвращается при неизвестном статусе бронирования
var ErrUnknownStatus = errors.New("domain: unknown booking status")

// BookingStatus represents the status of a booking
// The set is closed: accounting logic depends on exhaustiveness
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus парсит статус бронирования из строки
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// Booking represents a request for a quantity of a single resource over a window
type Booking struct {
	ID         int64
	ResourceID int64
	UserID     int64
	Window     Window
	Spaces     int // Requested quantity, > 0
	Status     BookingStatus

	// Внешний коммерческий идентификатор (заказ/счет) - ведется внешней системой
	Reference *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts toward accounting
// Only pending and confirmed bookings are active; cancelled never counts
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// MarkPending переводит бронирование в статус pending
// Допустимо только из pending (no-op); cancelled - терминальный статус
func (b *Booking) MarkPending() error {
	if b.Status != StatusPending {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, StatusPending)
	}
	return nil
}

// MarkConfirmed подтверждает бронирование
// Допустимо только из pending; повторное подтверждение - no-op
// Из cancelled возврат невозможен: создание нового бронирования - единственный путь
func (b *Booking) MarkConfirmed() error {
	switch b.Status {
	case StatusPending:
		b.Status = StatusConfirmed
		return nil
	case StatusConfirmed:
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, StatusConfirmed)
	}
}

// MarkCancelled отменяет бронирование с указанием причины
// Допустимо из любого нетерминального статуса; cancelled -> * запрещено
func (b *Booking) MarkCancelled(reason string, at time.Time) error {
	if b.Status == StatusCancelled {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, StatusCancelled)
	}

	b.Status = StatusCancelled
	if reason != "" {
		b.CancellationReason = &reason
	}
	b.CancelledAt = &at
	return nil
}

// ResourceBookingsFilter фильтр для получения бронирований ресурса
type ResourceBookingsFilter struct {
	ResourceID      int64          // Обязательный параметр
	Window          *Window        // Окно пересечения (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
