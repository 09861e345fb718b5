package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

var (
	// ErrMissingWindow возвращается, когда отсутствует start или end
	ErrMissingWindow = errors.New("handlers: missing start or end query parameter")

	// ErrInvalidWindow возвращается при некорректных границах окна
	ErrInvalidWindow = errors.New("handlers: invalid window query parameters")
)

// ParseWindowQuery извлекает обязательное окно [start, end) из query параметров
// Границы ожидаются в формате RFC 3339
func ParseWindowQuery(r *http.Request) (domain.Window, error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		return domain.Window{}, ErrMissingWindow
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return domain.Window{}, ErrInvalidWindow
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return domain.Window{}, ErrInvalidWindow
	}

	return domain.Window{Start: start, End: end}, nil
}

// ParseOptionalWindowQuery извлекает опциональное окно из query параметров
// Возвращает nil, если оба параметра отсутствуют; одна граница без второй - ошибка
func ParseOptionalWindowQuery(r *http.Request) (*domain.Window, error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" && endStr == "" {
		return nil, nil
	}

	window, err := ParseWindowQuery(r)
	if err != nil {
		return nil, err
	}

	return &window, nil
}
