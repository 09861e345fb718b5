package models

import (
	"time"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// Request модели

// CreateAllocationRequest запрос на создание аллокации
type CreateAllocationRequest struct {
	ResourceID int64         `json:"resourceId"`
	Window     domain.Window `json:"window"`
	Quantity   int           `json:"quantity"`
	Mode       string        `json:"mode"`
	Note       *string       `json:"note,omitempty"`
}

// ListAllocationsRequest запрос на получение аллокаций ресурса
type ListAllocationsRequest struct {
	ResourceID int64          `json:"resourceId"`
	Window     *domain.Window `json:"window,omitempty"` // Окно пересечения (опционально)
}

// Response модели

// AllocationResponse ответ с данными аллокации
type AllocationResponse struct {
	ID         int64   `json:"id"`
	ResourceID int64   `json:"resourceId"`
	Start      string  `json:"start"` // RFC 3339
	End        string  `json:"end"`   // RFC 3339
	Quantity   int     `json:"quantity"`
	Mode       string  `json:"mode"`
	Note       *string `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AllocationListResponse ответ со списком аллокаций
type AllocationListResponse struct {
	Allocations []AllocationResponse `json:"allocations"`
}

// Методы конвертации

// FromDomainAllocation конвертирует domain модель в DTO
func FromDomainAllocation(a *domain.Allocation) *AllocationResponse {
	if a == nil {
		return nil
	}

	return &AllocationResponse{
		ID:         a.ID,
		ResourceID: a.ResourceID,
		Start:      a.Window.Start.Format(time.RFC3339),
		End:        a.Window.End.Format(time.RFC3339),
		Quantity:   a.Quantity,
		Mode:       string(a.Mode),
		Note:       a.Note,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// FromDomainAllocationList конвертирует список domain моделей в DTO
func FromDomainAllocationList(allocations []*domain.Allocation) *AllocationListResponse {
	result := make([]AllocationResponse, 0, len(allocations))
	for _, a := range allocations {
		result = append(result, *FromDomainAllocation(a))
	}
	return &AllocationListResponse{Allocations: result}
}
