package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmtrv/BRS-AvailabilityService/internal/availability"
	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	resourceRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/resource"
)

// UseCase use case расчета доступности ресурса в окне запроса
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

// Execute выполняет use case расчета доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: resource=%d, window=%s", req.ResourceID, req.Window)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресурс
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("GetAvailability: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 3. Получаем аллокации, пересекающиеся с окном запроса
	allocations, err := uc.allocationRepo.GetByResourceOverlapping(ctx, req.ResourceID, req.Window)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get allocations: %v", err)
		return nil, fmt.Errorf("%w: failed to get allocations: %v", ErrInternal, err)
	}

	// 4. Получаем активные бронирования, пересекающиеся с окном запроса
	filter := domain.ResourceBookingsFilter{
		ResourceID:      req.ResourceID,
		Window:          &req.Window,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetByResourceWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Считаем доступность по всему окну
	effective := availability.EffectiveCapacity(resource, req.Window, allocations)
	booked := availability.BookedQuantity(resource.ID, req.Window, bookings)
	remaining := effective - booked

	// Остаток, обрезанный до нуля - только для отображения "свободных мест";
	// проверка овербукинга всегда идет по необрезанному значению
	available := remaining
	if available < 0 {
		available = 0
	}

	// 6. Нарезаем окно на периоды ценообразования и считаем доступность в каждом
	slices, err := uc.buildSlices(resource, req.Window, allocations, bookings)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build slices: %v", err)
		return nil, fmt.Errorf("%w: failed to build slices: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: resource=%d, effective=%d, booked=%d, remaining=%d, slices=%d",
		req.ResourceID, effective, booked, remaining, len(slices))

	return &Response{
		ResourceID:        req.ResourceID,
		Window:            req.Window,
		EffectiveCapacity: effective,
		BookedSpaces:      booked,
		RemainingSpaces:   remaining,
		AvailableSpaces:   available,
		Overbooked:        remaining < 0,
		PeriodCount:       periodCount(req.Window, slices),
		Slices:            slices,
	}, nil
}

// buildSlices считает доступность в каждом периоде ценообразования окна
func (uc *UseCase) buildSlices(
	resource *domain.Resource,
	window domain.Window,
	allocations []*domain.Allocation,
	bookings []*domain.Booking,
) ([]Slice, error) {
	windows, err := domain.SliceRange(window, resource.PricingPeriod)
	if err != nil {
		return nil, err
	}

	slices := make([]Slice, len(windows))
	for i, w := range windows {
		effective := availability.EffectiveCapacity(resource, w, allocations)
		booked := availability.BookedQuantity(resource.ID, w, bookings)
		remaining := effective - booked

		slices[i] = Slice{
			Window:            w,
			EffectiveCapacity: effective,
			BookedSpaces:      booked,
			RemainingSpaces:   remaining,
			Overbooked:        remaining < 0,
		}
	}

	return slices, nil
}

// periodCount количество непустых периодов в окне
func periodCount(window domain.Window, slices []Slice) int {
	if window.IsEmpty() {
		return 0
	}
	return len(slices)
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
