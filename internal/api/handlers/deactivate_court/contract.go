package deactivate_court

import "context"

// CourtsService is the service slice behind DELETE /courts/{id}.
type CourtsService interface {
	Deactivate(ctx context.Context, id int64) error
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
