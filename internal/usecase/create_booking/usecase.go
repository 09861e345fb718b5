package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmtrv/BRS-AvailabilityService/internal/availability"
	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	resourceRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/resource"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	resourceRepo   ResourceRepository
	allocationRepo AllocationRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	allocationRepo AllocationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		resourceRepo:   resourceRepo,
		allocationRepo: allocationRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка остатка мест и вставка идут в одной сериализуемой транзакции:
// решение о приеме бронирования никогда не коммитится по устаревшему чтению.
// Выборка пересекающихся бронирований внутри транзакции блокирует строки
// (FOR UPDATE), конкурирующие создания на тот же ресурс сериализуются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, resource=%d, window=%s, spaces=%d",
		req.UserID, req.ResourceID, req.Window, req.Spaces)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресурс
	// Отсутствующий ресурс - явная ошибка, а не нулевая емкость
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("CreateBooking: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking
	var remaining int

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем аллокации, пересекающиеся с окном бронирования
		allocations, err := uc.allocationRepo.GetByResourceOverlapping(txCtx, req.ResourceID, req.Window)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get allocations: %v", err)
			return fmt.Errorf("%w: failed to get allocations: %v", ErrInternal, err)
		}

		// 3.2. Получаем активные бронирования в окне с блокировкой (FOR UPDATE)
		filter := domain.ResourceBookingsFilter{
			ResourceID:      req.ResourceID,
			Window:          &req.Window,
			IncludeInactive: false, // Только активные бронирования
		}

		bookings, err := uc.bookingRepo.GetByResourceWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.3. Проверяем остаток мест по актуальному снапшоту
		remaining = availability.RemainingSpaces(resource, req.Window, allocations, bookings)
		if req.Spaces > remaining {
			uc.logger.Warn("CreateBooking: not enough spaces for resource=%d: requested=%d, remaining=%d",
				req.ResourceID, req.Spaces, remaining)
			return ErrNotEnoughSpaces
		}

		uc.logger.Info("CreateBooking: spaces available for resource=%d: requested=%d, remaining=%d",
			req.ResourceID, req.Spaces, remaining)

		// 3.4. Создаем бронирование в статусе pending
		// Подтверждение - отдельный явный шаг (commit boundary за пределами движка)
		booking := &domain.Booking{
			ResourceID: req.ResourceID,
			UserID:     req.UserID,
			Window:     req.Window,
			Spaces:     req.Spaces,
			Status:     domain.StatusPending,
			Reference:  req.Reference,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ResourceID:      result.ResourceID,
		UserID:          result.UserID,
		Window:          result.Window,
		Spaces:          result.Spaces,
		Status:          string(result.Status),
		Reference:       result.Reference,
		RemainingSpaces: remaining - result.Spaces,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
