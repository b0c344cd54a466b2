package domain

import "go.trai.ch/zerr"

// LogFormat selects how log records are rendered.
type LogFormat string

// Supported log formats.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// ParseLogFormat validates s as a LogFormat.
func ParseLogFormat(s string) (LogFormat, error) {
	switch f := LogFormat(s); f {
	case LogFormatPretty, LogFormatJSON:
		return f, nil
	default:
		return "", zerr.With(ErrInvalidLogFormat, "format", s)
	}
}

// LogLevel is the minimum severity that gets logged.
type LogLevel string

// Supported log levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ParseLogLevel validates s as a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch l := LogLevel(s); l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return l, nil
	default:
		return "", zerr.With(ErrInvalidLogLevel, "level", s)
	}
}

// Settings is the resolved makerun configuration.
type Settings struct {
	LogFormat LogFormat
	LogLevel  LogLevel
	// PropagateExit makes makerun exit with make's status instead of always succeeding.
	PropagateExit bool
	// History enables persisting the latest run record.
	History bool
	// StateDir holds the run record.
	StateDir string
	// Source is the config file the settings were read from, empty for defaults.
	Source string
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		LogFormat: LogFormatPretty,
		LogLevel:  LogLevelInfo,
		History:   true,
		StateDir:  StateDirName,
	}
}
