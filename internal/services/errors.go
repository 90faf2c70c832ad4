package services

import "errors"

// Analytics service errors
var (
	ErrNoFlightData     = errors.New("no flight data loaded")
	ErrInvalidDateRange = errors.New("date range start is after end")
	ErrUnknownRegion    = errors.New("unknown region selector")
)
