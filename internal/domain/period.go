package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownPeriod возвращается при неизвестной гранулярности периода
var ErrUnknownPeriod = errors.New("domain: unknown pricing period")

// Period represents the granularity used to slice a date range (pricing period)
type Period string

const (
	PeriodHour Period = "hour"
	PeriodDay  Period = "day"
)

// ParsePeriod парсит гранулярность периода из строки
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodHour:
		return PeriodHour, nil
	case PeriodDay:
		return PeriodDay, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
	}
}

// Duration возвращает длительность одного периода
func (p Period) Duration() time.Duration {
	switch p {
	case PeriodHour:
		return time.Hour
	case PeriodDay:
		return 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// IsValid проверяет, что гранулярность известна
func (p Period) IsValid() bool {
	return p == PeriodHour || p == PeriodDay
}

// SliceRange детерминированно нарезает окно [w.Start, w.End) на последовательные
// подокна длиной period; последний кусок усекается до w.End
//
// Свойства:
// - конкатенация кусков в точности покрывает окно, без дыр и пересечений
// - каждый кусок не длиннее period (последний может быть короче)
// - окно нулевой длины дает ровно один кусок нулевой длины
//
// Возвращает ErrInvalidRange, если окно некорректно
func SliceRange(w Window, period Period) ([]Window, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if w.IsEmpty() {
		return []Window{w}, nil
	}

	step := period.Duration()
	slices := make([]Window, 0, w.Duration()/step+1)

	cur := w.Start
	for cur.Before(w.End) {
		next := cur.Add(step)
		if next.After(w.End) {
			next = w.End
		}
		slices = append(slices, Window{Start: cur, End: next})
		cur = next
	}

	return slices, nil
}

// PeriodCount возвращает количество периодов, покрывающих окно
// Используется для расчета "длины во времени" при ценообразовании
func PeriodCount(w Window, period Period) (int, error) {
	slices, err := SliceRange(w, period)
	if err != nil {
		return 0, err
	}
	if w.IsEmpty() {
		return 0, nil
	}
	return len(slices), nil
}
