package get_availability

import (
	"context"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByResourceWithFilter получает бронирования ресурса, пересекающиеся с окном
	GetByResourceWithFilter(ctx context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// AllocationRepository интерфейс репозитория аллокаций
type AllocationRepository interface {
	GetByResourceOverlapping(ctx context.Context, resourceID int64, window domain.Window) ([]*domain.Allocation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
