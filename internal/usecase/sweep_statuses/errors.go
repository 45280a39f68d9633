package sweep_statuses

import "errors"

var (
	// ErrInternal is returned when a sweep step fails; the scheduler
	// logs it and retries on the next tick
	ErrInternal = errors.New("sweep_statuses: internal error")
)
