package availability

import (
	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// BookedQuantity вычисляет количество занятых мест ресурса в окне запроса:
// сумма Spaces по всем активным (pending/confirmed) бронированиям ресурса,
// чьи окна пересекаются с окном запроса.
//
// Отмененные бронирования никогда не учитываются - это единственный фильтр.
// Пропорционального учета доли пересечения нет, бронирование считается целиком.
// Точный тест пересечения применяется заново, даже если хранилище уже
// предфильтровало выборку по окну.
func BookedQuantity(resourceID int64, window domain.Window, bookings []*domain.Booking) int {
	booked := 0

	for _, b := range bookings {
		if b.ResourceID != resourceID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if b.Window.Overlaps(window) {
			booked += b.Spaces
		}
	}

	return booked
}

// TotalBookedSpaces синоним BookedQuantity для диагностики и отчетов
func TotalBookedSpaces(resourceID int64, window domain.Window, bookings []*domain.Booking) int {
	return BookedQuantity(resourceID, window, bookings)
}

// RemainingSpaces вычисляет остаток мест: эффективная емкость минус занятые места
//
// Результат может быть отрицательным - это признак овербукинга, и вызывающая
// сторона НЕ должна обрезать его до нуля при проверке. Обрезка до нуля -
// ответственность слоя представления ("свободных мест: 0")
func RemainingSpaces(resource *domain.Resource, window domain.Window, allocations []*domain.Allocation, bookings []*domain.Booking) int {
	return EffectiveCapacity(resource, window, allocations) - BookedQuantity(resource.ID, window, bookings)
}
