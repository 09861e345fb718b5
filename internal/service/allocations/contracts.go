package allocations

import (
	"context"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// AllocationRepository интерфейс репозитория аллокаций
type AllocationRepository interface {
	Create(ctx context.Context, alloc *domain.Allocation) (*domain.Allocation, error)
	GetByID(ctx context.Context, id int64) (*domain.Allocation, error)
	GetByResource(ctx context.Context, resourceID int64) ([]*domain.Allocation, error)
	GetByResourceOverlapping(ctx context.Context, resourceID int64, window domain.Window) ([]*domain.Allocation, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
