package report_overbookings

import (
	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// Request модель запроса на отчет об овербукинге
type Request struct {
	ResourceID int64         // ID ресурса
	Window     domain.Window // Окно отчета [start, end)
}

// Response модель ответа с перебронированными периодами
type Response struct {
	ResourceID int64
	Window     domain.Window

	// Overbookings перебронированные периоды ценообразования внутри окна
	// Пустой список означает отсутствие овербукинга
	Overbookings []Overbooking
}

// Overbooking один перебронированный период
type Overbooking struct {
	Window            domain.Window
	EffectiveCapacity int
	BookedSpaces      int
	RemainingSpaces   int // Всегда отрицательный
}
