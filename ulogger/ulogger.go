package ulogger

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
	colorCyan
	colorWhite

	colorBold     = 1
	colorDarkGray = 90
)

// Values accepted by logger_type.
const (
	LoggerTypePretty = "pretty"
	LoggerTypeJSON   = "json"
)

// AppName is stamped on every json log line so validator logs can be picked out of a shared stream.
const AppName = "kasvalidator"

type Logger interface {
	LogLevel() int
	SetLogLevel(level string)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	New(service string, options ...Option) Logger
	Duplicate(options ...Option) Logger
}

// New returns a zerolog backed logger for service, pretty printed unless the json type is asked for.
func New(service string, options ...Option) Logger {
	return NewZeroLogger(service, options...)
}

// Factory binds options once so every daemon service gets a logger with the same level, type and writer.
func Factory(options ...Option) func(service string) Logger {
	return func(service string) Logger {
		return New(service, options...)
	}
}
