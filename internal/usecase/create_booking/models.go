package create_booking

import (
	"time"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64         // ID пользователя, создающего бронирование
	ResourceID int64         // ID бронируемого ресурса
	Window     domain.Window // Окно бронирования [start, end)
	Spaces     int           // Запрашиваемое количество мест
	Reference  *string       // Внешний коммерческий идентификатор (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	ResourceID int64
	UserID     int64
	Window     domain.Window
	Spaces     int
	Status     string
	Reference  *string

	// RemainingSpaces остаток мест в окне после создания бронирования
	RemainingSpaces int

	CreatedAt time.Time
	UpdatedAt time.Time
}
