package domain

// Business validation constants
const (
	MinCapacity = 0
	MaxCapacity = 100000

	MinSpacesPerBooking = 1
	MaxSpacesPerBooking = 10000

	MaxAllocationQuantity = 100000

	MaxTitleLength = 255
	MaxNoteLength  = 500

	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // RFC3339 без зоны (время хранится в UTC)
)

// DefaultPricingPeriod период по умолчанию для новых ресурсов
const DefaultPricingPeriod = PeriodDay

// ActiveStatuses список статусов, учитываемых при подсчете занятых мест
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, исключаемых из подсчета занятых мест
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
