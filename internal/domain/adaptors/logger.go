package adaptors

type LogLevel string

const (
	Trace LogLevel = "trace"
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

// ValidLogLevel reports whether s names one of the supported levels.
func ValidLogLevel(s string) bool {
	switch LogLevel(s) {
	case Trace, Debug, Info, Warn, Error:
		return true
	}
	return false
}
