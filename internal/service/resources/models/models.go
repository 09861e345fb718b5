package models

import (
	"time"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// ResourceResponse ответ с данными ресурса
type ResourceResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Capacity      int    `json:"capacity"`
	PricingPeriod string `json:"pricingPeriod"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResourceListResponse ответ со списком ресурсов
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(r *domain.Resource) *ResourceResponse {
	if r == nil {
		return nil
	}

	return &ResourceResponse{
		ID:            r.ID,
		Title:         r.Title,
		Capacity:      r.Capacity,
		PricingPeriod: string(r.PricingPeriod),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainResourceList конвертирует список domain моделей в DTO
func FromDomainResourceList(resources []*domain.Resource) *ResourceListResponse {
	result := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		result = append(result, *FromDomainResource(r))
	}
	return &ResourceListResponse{Resources: result}
}
