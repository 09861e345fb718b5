package allocations

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда аллокация не найдена
	ErrAllocationNotFound = errors.New("allocation not found")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
