package get_availability

import (
	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// Request модель запроса на расчет доступности
type Request struct {
	ResourceID int64         // ID ресурса
	Window     domain.Window // Окно запроса [start, end)
}

// Response модель ответа с расчетом доступности
type Response struct {
	ResourceID int64
	Window     domain.Window

	EffectiveCapacity int  // Эффективная емкость в окне
	BookedSpaces      int  // Занятые места в окне
	RemainingSpaces   int  // Остаток мест; может быть отрицательным при овербукинге
	AvailableSpaces   int  // Остаток, обрезанный до нуля - презентационное поле
	Overbooked        bool // RemainingSpaces < 0

	PeriodCount int // Количество периодов ценообразования, покрывающих окно

	Slices []Slice // Доступность по каждому периоду ценообразования
}

// Slice доступность в одном периоде ценообразования
type Slice struct {
	Window            domain.Window
	EffectiveCapacity int
	BookedSpaces      int
	RemainingSpaces   int
	Overbooked        bool
}
