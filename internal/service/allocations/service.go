package allocations

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	allocationRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/allocation"
	resourceRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/resource"
	"github.com/dmtrv/BRS-AvailabilityService/internal/service/allocations/models"
)

// Service сервис для работы с ручными аллокациями емкости
type Service struct {
	allocationRepo AllocationRepository
	resourceRepo   ResourceRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса аллокаций
func NewService(allocationRepo AllocationRepository, resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		allocationRepo: allocationRepo,
		resourceRepo:   resourceRepo,
		logger:         logger,
	}
}

// Create создает аллокацию для ресурса
func (s *Service) Create(ctx context.Context, req *models.CreateAllocationRequest) (*models.AllocationResponse, error) {
	s.logger.Info("Create: creating allocation for resource=%d, mode=%s", req.ResourceID, req.Mode)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for resource=%d: %v", req.ResourceID, err)
		return nil, err
	}

	mode, err := domain.ParseAllocationMode(req.Mode)
	if err != nil {
		s.logger.Warn("Create: unknown mode=%s for resource=%d", req.Mode, req.ResourceID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Проверяем, что ресурс существует - аллокация на отсутствующий ресурс бессмысленна
	if _, err := s.resourceRepo.GetByID(ctx, req.ResourceID); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("Create: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("Create: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	alloc := &domain.Allocation{
		ResourceID: req.ResourceID,
		Window:     req.Window,
		Quantity:   req.Quantity,
		Mode:       mode,
		Note:       req.Note,
	}

	created, err := s.allocationRepo.Create(ctx, alloc)
	if err != nil {
		s.logger.Error("Create: repository error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created allocation id=%d for resource=%d", created.ID, req.ResourceID)
	return models.FromDomainAllocation(created), nil
}

// List получает аллокации ресурса, опционально пересекающиеся с окном
func (s *Service) List(ctx context.Context, req *models.ListAllocationsRequest) (*models.AllocationListResponse, error) {
	s.logger.Info("List: fetching allocations for resource=%d", req.ResourceID)

	var (
		allocations []*domain.Allocation
		err         error
	)

	if req.Window != nil {
		if err := req.Window.Validate(); err != nil {
			s.logger.Warn("List: invalid window for resource=%d: %v", req.ResourceID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		allocations, err = s.allocationRepo.GetByResourceOverlapping(ctx, req.ResourceID, *req.Window)
	} else {
		allocations, err = s.allocationRepo.GetByResource(ctx, req.ResourceID)
	}

	if err != nil {
		s.logger.Error("List: repository error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d allocations for resource=%d", len(allocations), req.ResourceID)
	return models.FromDomainAllocationList(allocations), nil
}

// Delete удаляет аллокацию
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting allocation id=%d", id)

	if err := s.allocationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, allocationRepo.ErrAllocationNotFound) {
			s.logger.Warn("Delete: allocation id=%d not found", id)
			return ErrAllocationNotFound
		}
		s.logger.Error("Delete: repository error for allocation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted allocation id=%d", id)
	return nil
}

// validateCreateRequest валидирует запрос на создание аллокации
func validateCreateRequest(req *models.CreateAllocationRequest) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if err := req.Window.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be non-negative", ErrInvalidInput)
	}

	if req.Quantity > domain.MaxAllocationQuantity {
		return fmt.Errorf("%w: quantity must not exceed %d", ErrInvalidInput, domain.MaxAllocationQuantity)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}
