package create_booking

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrNotEnoughSpaces возвращается, когда запрошенное количество мест
	// превышает остаток в окне бронирования
	ErrNotEnoughSpaces = errors.New("create_booking: not enough spaces in the requested window")

	// ErrInvalidRange возвращается при некорректном окне бронирования
	ErrInvalidRange = errors.New("create_booking: invalid booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
