package ports

import "go.trai.ch/makerun/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetJSON switches between JSON and pretty output.
	SetJSON(enable bool)
	// SetLevel changes the minimum level that gets logged.
	SetLevel(level domain.LogLevel)
}
