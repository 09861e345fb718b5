package create_allocation

import (
	"time"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	"github.com/dmtrv/BRS-AvailabilityService/internal/service/allocations/models"
)

// CreateAllocationRequest HTTP request model
type CreateAllocationRequest struct {
	Start    string  `json:"start"` // RFC 3339
	End      string  `json:"end"`   // RFC 3339
	Quantity int     `json:"quantity"`
	Mode     string  `json:"mode"` // allocate_all | increase | reserve
	Note     *string `json:"note,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateAllocationRequest) ToServiceRequest(resourceID int64) (*models.CreateAllocationRequest, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &models.CreateAllocationRequest{
		ResourceID: resourceID,
		Window:     domain.Window{Start: start, End: end},
		Quantity:   r.Quantity,
		Mode:       r.Mode,
		Note:       r.Note,
	}, nil
}
