package create_allocation

import (
	"context"

	"github.com/dmtrv/BRS-AvailabilityService/internal/service/allocations/models"
)

type AllocationService interface {
	Create(ctx context.Context, req *models.CreateAllocationRequest) (*models.AllocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
