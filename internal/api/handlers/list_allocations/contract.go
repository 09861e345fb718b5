package list_allocations

import (
	"context"

	"github.com/dmtrv/BRS-AvailabilityService/internal/service/allocations/models"
)

type AllocationService interface {
	List(ctx context.Context, req *models.ListAllocationsRequest) (*models.AllocationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
