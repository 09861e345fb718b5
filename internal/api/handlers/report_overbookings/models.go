package report_overbookings

import (
	"time"

	reportOverbookings "github.com/dmtrv/BRS-AvailabilityService/internal/usecase/report_overbookings"
)

// OverbookingsResponse HTTP response model
type OverbookingsResponse struct {
	ResourceID int64  `json:"resourceId"`
	Start      string `json:"start"` // RFC 3339
	End        string `json:"end"`   // RFC 3339

	Overbookings []OverbookingResponse `json:"overbookings"`
}

// OverbookingResponse один перебронированный период
type OverbookingResponse struct {
	Start             string `json:"start"`
	End               string `json:"end"`
	EffectiveCapacity int    `json:"effectiveCapacity"`
	BookedSpaces      int    `json:"bookedSpaces"`
	RemainingSpaces   int    `json:"remainingSpaces"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reportOverbookings.Response) *OverbookingsResponse {
	overbookings := make([]OverbookingResponse, 0, len(resp.Overbookings))
	for _, ob := range resp.Overbookings {
		overbookings = append(overbookings, OverbookingResponse{
			Start:             ob.Window.Start.Format(time.RFC3339),
			End:               ob.Window.End.Format(time.RFC3339),
			EffectiveCapacity: ob.EffectiveCapacity,
			BookedSpaces:      ob.BookedSpaces,
			RemainingSpaces:   ob.RemainingSpaces,
		})
	}

	return &OverbookingsResponse{
		ResourceID:   resp.ResourceID,
		Start:        resp.Window.Start.Format(time.RFC3339),
		End:          resp.Window.End.Format(time.RFC3339),
		Overbookings: overbookings,
	}
}
