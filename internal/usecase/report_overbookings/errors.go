package report_overbookings

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("report_overbookings: resource not found")

	// ErrInvalidRange возвращается при некорректном окне отчета
	ErrInvalidRange = errors.New("report_overbookings: invalid report window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("report_overbookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("report_overbookings: internal error")
)
