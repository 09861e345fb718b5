// Package availability реализует чистый движок расчета доступности:
// эффективная емкость ресурса, занятые места, остаток и детектор овербукинга.
// Пакет не имеет побочных эффектов и состояния - все функции считают результат
// по переданному снапшоту аллокаций и бронирований. Пересчет от авторитетного
// набора на каждый запрос исключает рассинхронизацию инкрементальных счетчиков
// при отменах и ретроактивных аллокациях.
package availability

import (
	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// EffectiveCapacity вычисляет эффективную емкость ресурса в окне запроса:
// базовая емкость, скорректированная каждой аллокацией, чье окно пересекается
// с окном запроса.
//
// Порядок применения фиксирован для детерминизма:
//  1. allocate_all - каждая такая аллокация вычитает полную базовую емкость
//     (полное резервирование пересеченной части окна)
//  2. increase - прибавляет Quantity
//  3. reserve - вычитает Quantity
//
// Аллокация применяется целиком при любом пересечении с окном запроса,
// без пропорционального учета доли пересечения. Результат не бывает
// отрицательным.
func EffectiveCapacity(resource *domain.Resource, window domain.Window, allocations []*domain.Allocation) int {
	capacity := resource.Capacity

	// Шаг 1: полные резервирования
	for _, alloc := range allocations {
		if alloc.ResourceID != resource.ID || alloc.Mode != domain.ModeAllocateAll {
			continue
		}
		if alloc.Window.Overlaps(window) {
			capacity -= resource.Capacity
		}
	}

	// Шаг 2: увеличения емкости
	for _, alloc := range allocations {
		if alloc.ResourceID != resource.ID || alloc.Mode != domain.ModeIncrease {
			continue
		}
		if alloc.Window.Overlaps(window) {
			capacity += alloc.Quantity
		}
	}

	// Шаг 3: частичные резервирования
	for _, alloc := range allocations {
		if alloc.ResourceID != resource.ID || alloc.Mode != domain.ModeReserve {
			continue
		}
		if alloc.Window.Overlaps(window) {
			capacity -= alloc.Quantity
		}
	}

	if capacity < 0 {
		return 0
	}

	return capacity
}
