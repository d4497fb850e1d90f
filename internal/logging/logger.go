package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "VITRINE_LOG_LEVEL"

// Initialize creates a new logger with the specified level, writing to
// output (a file path, "stdout" or "stderr"; empty means stderr).
// If level is empty, it checks VITRINE_LOG_LEVEL.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if output == "stdout" || output == "stderr" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// Files don't want color codes
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so the TUI screen stays clean
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// Carousel returns the field identifying a carousel instance.
func Carousel(id string) zap.Field {
	return zap.String("carousel", shortID(id))
}

// Index returns a slide index field.
func Index(i int) zap.Field {
	return zap.Int("index", i)
}

// LogCarouselEvent logs a carousel lifecycle event
func LogCarouselEvent(id string, event string, index int, count int) {
	Info("Carousel event",
		Carousel(id),
		zap.String("event", event),
		Index(index),
		zap.Int("count", count),
	)
}

// LogCommand logs an applied navigation command
func LogCommand(id string, command string, index int) {
	Debug("Slide command applied",
		Carousel(id),
		zap.String("command", command),
		Index(index),
	)
}

// LogGesture logs a drag gesture transition on a channel
func LogGesture(id string, channel string, phase string, x int) {
	Debug("Gesture",
		Carousel(id),
		zap.String("channel", channel),
		zap.String("phase", phase),
		zap.Int("x", x),
	)
}

// LogAutoplay logs autoplay timer transitions
func LogAutoplay(id string, event string) {
	Debug("Autoplay",
		Carousel(id),
		zap.String("event", event),
	)
}

// LogDialog logs a dialog state transition
func LogDialog(from string, to string, trigger string) {
	Info("Dialog transition",
		zap.String("from", from),
		zap.String("to", to),
		zap.String("trigger", trigger),
	)
}

// LogFormSubmit logs the outcome of a contact form submission.
// Field values are never logged.
func LogFormSubmit(accepted bool, field string, reason string) {
	fields := []zap.Field{zap.Bool("accepted", accepted)}
	if !accepted {
		fields = append(fields,
			zap.String("field", field),
			zap.String("reason", reason),
		)
	}
	Info("Contact form submitted", fields...)
}

// shortID trims uuids down to their first group for readability
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
