package emailjs

// Logger is the logging interface the client depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder counts notification outcomes; may be nil when metrics are disabled
type MetricsRecorder interface {
	RecordNotification(outcome string)
}
