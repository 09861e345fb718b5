package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	resourceRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/resource"
	"github.com/dmtrv/BRS-AvailabilityService/internal/service/resources/models"
)

// Service сервис чтения каталога бронируемых ресурсов
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// GetByID получает ресурс по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ResourceResponse, error) {
	s.logger.Info("GetByID: fetching resource id=%d", id)

	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetByID: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetByID: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainResource(resource), nil
}

// List получает список бронируемых ресурсов
func (s *Service) List(ctx context.Context, onlyBookable bool) (*models.ResourceListResponse, error) {
	s.logger.Info("List: fetching resources, onlyBookable=%v", onlyBookable)

	resources, err := s.resourceRepo.List(ctx, domain.ResourcesFilter{OnlyBookable: onlyBookable})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d resources", len(resources))
	return models.FromDomainResourceList(resources), nil
}
