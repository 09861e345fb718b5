package availability

import (
	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// Line одна пара ресурс/окно составного бронирования вместе со снапшотом
// аллокаций и бронирований, против которого она проверяется
type Line struct {
	Resource    *domain.Resource
	Window      domain.Window
	Allocations []*domain.Allocation
	Bookings    []*domain.Booking
}

// IsOverbooked проверяет, что ресурс в окне перебронирован (остаток < 0)
func IsOverbooked(resource *domain.Resource, window domain.Window, allocations []*domain.Allocation, bookings []*domain.Booking) bool {
	return RemainingSpaces(resource, window, allocations, bookings) < 0
}

// FindOverbooked проверяет каждую пару ресурс/окно независимо и возвращает
// перебронированные. Используется как сигнал при валидации перед коммитом
// (движок только сообщает о состоянии, решение об отказе - за вызывающим)
// и как отчетный сигнал по уже существующим бронированиям
func FindOverbooked(lines []Line) []Line {
	overbooked := make([]Line, 0)

	for _, line := range lines {
		if IsOverbooked(line.Resource, line.Window, line.Allocations, line.Bookings) {
			overbooked = append(overbooked, line)
		}
	}

	return overbooked
}
