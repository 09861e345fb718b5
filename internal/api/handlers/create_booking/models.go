package create_booking

import (
	"time"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	createBooking "github.com/dmtrv/BRS-AvailabilityService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID int64   `json:"resourceId"`
	Start      string  `json:"start"` // RFC 3339
	End        string  `json:"end"`   // RFC 3339
	Spaces     int     `json:"spaces"`
	Reference  *string `json:"reference,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	ResourceID int64   `json:"resourceId"`
	UserID     int64   `json:"userId"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Spaces     int     `json:"spaces"`
	Status     string  `json:"status"`
	Reference  *string `json:"reference,omitempty"`

	RemainingSpaces int `json:"remainingSpaces"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		ResourceID: r.ResourceID,
		Window:     domain.Window{Start: start, End: end},
		Spaces:     r.Spaces,
		Reference:  r.Reference,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ResourceID:      resp.ResourceID,
		UserID:          resp.UserID,
		Start:           resp.Window.Start.Format(time.RFC3339),
		End:             resp.Window.End.Format(time.RFC3339),
		Spaces:          resp.Spaces,
		Status:          resp.Status,
		Reference:       resp.Reference,
		RemainingSpaces: resp.RemainingSpaces,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
