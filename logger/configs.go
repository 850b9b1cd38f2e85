package logger

// Log level constants accepted by Config.Level.
const (
	// Debug is the most verbose level, intended for development and troubleshooting.
	Debug = "debug"

	// Info is the standard level for general operational information.
	Info = "info"

	// Warning shows only warning and error messages.
	Warning = "warning"

	// Error shows only error messages.
	Error = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "debug", "info", "warning", and "error".
	// Unknown or empty values default to "info".
	Level string

	// EnableTracing controls whether trace correlation is enabled.
	// When true, context-aware logging methods extract trace and span IDs
	// from the active OpenTelemetry span and attach them to log entries
	// as "trace_id" and "span_id" fields.
	EnableTracing bool

	// ServiceName populates the "service" field on every log entry.
	ServiceName string

	// CallerSkip controls the number of stack frames to skip when reporting
	// the caller. Use 1 (the default) when calling the logger directly, 2
	// when one wrapper layer sits between your code and the logger, and so
	// on. Values <= 0 default to 1.
	CallerSkip int
}
