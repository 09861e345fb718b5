package report_overbookings

import (
	"context"

	reportOverbookings "github.com/dmtrv/BRS-AvailabilityService/internal/usecase/report_overbookings"
)

type ReportOverbookingsUseCase interface {
	Execute(ctx context.Context, req *reportOverbookings.Request) (*reportOverbookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
