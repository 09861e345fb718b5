package get_availability

import (
	"time"

	getAvailability "github.com/dmtrv/BRS-AvailabilityService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ResourceID int64  `json:"resourceId"`
	Start      string `json:"start"` // RFC 3339
	End        string `json:"end"`   // RFC 3339

	EffectiveCapacity int  `json:"effectiveCapacity"`
	BookedSpaces      int  `json:"bookedSpaces"`
	RemainingSpaces   int  `json:"remainingSpaces"` // Может быть отрицательным
	AvailableSpaces   int  `json:"availableSpaces"` // Обрезан до нуля
	Overbooked        bool `json:"overbooked"`

	PeriodCount int `json:"periodCount"`

	Slices []SliceResponse `json:"slices"`
}

// SliceResponse доступность в одном периоде ценообразования
type SliceResponse struct {
	Start             string `json:"start"`
	End               string `json:"end"`
	EffectiveCapacity int    `json:"effectiveCapacity"`
	BookedSpaces      int    `json:"bookedSpaces"`
	RemainingSpaces   int    `json:"remainingSpaces"`
	Overbooked        bool   `json:"overbooked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slices := make([]SliceResponse, 0, len(resp.Slices))
	for _, s := range resp.Slices {
		slices = append(slices, SliceResponse{
			Start:             s.Window.Start.Format(time.RFC3339),
			End:               s.Window.End.Format(time.RFC3339),
			EffectiveCapacity: s.EffectiveCapacity,
			BookedSpaces:      s.BookedSpaces,
			RemainingSpaces:   s.RemainingSpaces,
			Overbooked:        s.Overbooked,
		})
	}

	return &AvailabilityResponse{
		ResourceID:        resp.ResourceID,
		Start:             resp.Window.Start.Format(time.RFC3339),
		End:               resp.Window.End.Format(time.RFC3339),
		EffectiveCapacity: resp.EffectiveCapacity,
		BookedSpaces:      resp.BookedSpaces,
		RemainingSpaces:   resp.RemainingSpaces,
		AvailableSpaces:   resp.AvailableSpaces,
		Overbooked:        resp.Overbooked,
		PeriodCount:       resp.PeriodCount,
		Slices:            slices,
	}
}
