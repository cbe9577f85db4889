package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrCatalogUnavailable = errors.New("catalog data unavailable")
	ErrPlannerUnavailable = errors.New("ai planner unavailable")
	ErrPlaceLookupFailed  = errors.New("place lookup failed")
	ErrDatabaseError      = errors.New("database error")
)
