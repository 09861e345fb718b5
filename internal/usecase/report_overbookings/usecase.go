package report_overbookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmtrv/BRS-AvailabilityService/internal/availability"
	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	resourceRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/resource"
)

// UseCase use case отчета об овербукинге: находит периоды ценообразования
// внутри окна, в которых занято больше мест, чем позволяет эффективная емкость
//
// Движок только сообщает о состоянии; что делать с перебронированными
// периодами (предупреждать, отменять, доуплотнять) - решение вызывающего
type UseCase struct {
	bookingRepo    BookingRepository
	resourceRepo   ResourceRepository
	allocationRepo AllocationRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	allocationRepo AllocationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		resourceRepo:   resourceRepo,
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

// Execute выполняет use case отчета об овербукинге
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReportOverbookings: resource=%d, window=%s", req.ResourceID, req.Window)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReportOverbookings: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресурс
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("ReportOverbookings: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("ReportOverbookings: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 3. Получаем аллокации и активные бронирования в окне отчета
	allocations, err := uc.allocationRepo.GetByResourceOverlapping(ctx, req.ResourceID, req.Window)
	if err != nil {
		uc.logger.Error("ReportOverbookings: failed to get allocations: %v", err)
		return nil, fmt.Errorf("%w: failed to get allocations: %v", ErrInternal, err)
	}

	filter := domain.ResourceBookingsFilter{
		ResourceID:      req.ResourceID,
		Window:          &req.Window,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByResourceWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ReportOverbookings: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Нарезаем окно на периоды ценообразования и проверяем каждый независимо
	windows, err := domain.SliceRange(req.Window, resource.PricingPeriod)
	if err != nil {
		uc.logger.Error("ReportOverbookings: failed to slice window: %v", err)
		return nil, fmt.Errorf("%w: failed to slice window: %v", ErrInternal, err)
	}

	lines := make([]availability.Line, len(windows))
	for i, w := range windows {
		lines[i] = availability.Line{
			Resource:    resource,
			Window:      w,
			Allocations: allocations,
			Bookings:    bookings,
		}
	}

	overbooked := availability.FindOverbooked(lines)

	overbookings := make([]Overbooking, len(overbooked))
	for i, line := range overbooked {
		effective := availability.EffectiveCapacity(line.Resource, line.Window, line.Allocations)
		booked := availability.BookedQuantity(line.Resource.ID, line.Window, line.Bookings)

		overbookings[i] = Overbooking{
			Window:            line.Window,
			EffectiveCapacity: effective,
			BookedSpaces:      booked,
			RemainingSpaces:   effective - booked,
		}
	}

	uc.logger.Info("ReportOverbookings: resource=%d, checked %d periods, %d overbooked",
		req.ResourceID, len(windows), len(overbookings))

	return &Response{
		ResourceID:   req.ResourceID,
		Window:       req.Window,
		Overbookings: overbookings,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if err := req.Window.Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			return fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
