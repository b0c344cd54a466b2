package domain

import "go.trai.ch/zerr"

var (
	// ErrNotEnoughArguments is returned when fewer than two positional arguments are given.
	ErrNotEnoughArguments = zerr.New("not enough arguments, expected <make_target> <bin_path>")

	// ErrUnexpectedArguments is returned when positional arguments are combined with --last.
	ErrUnexpectedArguments = zerr.New("--last takes no arguments")

	// ErrMakeStartFailed is returned when the make process cannot be started.
	ErrMakeStartFailed = zerr.New("failed to start make")

	// ErrMakeFailed is returned when make exits with a non-zero status.
	ErrMakeFailed = zerr.New("make exited with a non-zero status")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidLogFormat is returned when the log format is neither pretty nor json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrInvalidLogLevel is returned when the log level is unknown.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")

	// ErrStoreCreateFailed is returned when the state directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state directory")

	// ErrStoreReadFailed is returned when the run record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read run record")

	// ErrStoreUnmarshalFailed is returned when the run record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal run record")

	// ErrStoreMarshalFailed is returned when the run record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal run record")

	// ErrStoreWriteFailed is returned when the run record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write run record")

	// ErrNoRunRecorded is returned when --last finds no run record.
	ErrNoRunRecorded = zerr.New("no run recorded yet")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
