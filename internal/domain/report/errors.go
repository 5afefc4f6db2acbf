package report

import "errors"

var (
	ErrInvalidDateRange       = errors.New("fechaInicio must not be after fechaFin")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
