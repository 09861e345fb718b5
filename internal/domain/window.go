package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange возвращается, когда начало окна позже его конца
var ErrInvalidRange = errors.New("domain: invalid range: start is after end")

// Window полуоткрытый временной интервал [Start, End)
// Полуоткрытая конвенция исключает двойной учет, когда два интервала граничат
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow создает окно [start, end)
// Возвращает ErrInvalidRange, если start позже end (окно нулевой длины допустимо)
func NewWindow(start, end time.Time) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate проверяет, что окно корректно (Start не позже End)
func (w Window) Validate() error {
	if w.Start.After(w.End) {
		return fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidRange, w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
	}
	return nil
}

// IsEmpty возвращает true для окна нулевой длины
func (w Window) IsEmpty() bool {
	return !w.Start.Before(w.End)
}

// Duration возвращает длину окна
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps проверяет, что два полуоткрытых окна имеют хотя бы один общий момент
// Строгие неравенства: граничащие окна НЕ пересекаются
//
// Примеры:
// - [10:00, 12:00) и [11:00, 13:00) → пересекаются (11:00-12:00)
// - [10:00, 12:00) и [12:00, 14:00) → НЕ пересекаются (граничат)
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Contains проверяет, что момент t лежит внутри окна
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Clamp возвращает пересечение окна с ограничивающим окном bounds
// Если окна не пересекаются, возвращает вырожденное окно (Start == End),
// никогда не возвращает окно отрицательной длины
func (w Window) Clamp(bounds Window) Window {
	start := w.Start
	if bounds.Start.After(start) {
		start = bounds.Start
	}

	end := w.End
	if bounds.End.Before(end) {
		end = bounds.End
	}

	if end.Before(start) {
		return Window{Start: end, End: end}
	}

	return Window{Start: start, End: end}
}

// String возвращает строковое представление окна
func (w Window) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
