package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with screening-specific helpers
type Logger struct {
	*zap.Logger
	serviceName string
}

// New creates a new logger instance
func New(serviceName, environment string, debug bool) (*Logger, error) {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	config.InitialFields = map[string]interface{}{
		"service": serviceName,
		"env":     environment,
		"pid":     os.Getpid(),
	}

	zapLogger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger:      zapLogger,
		serviceName: serviceName,
	}, nil
}

// NewNop returns a logger that discards everything. Useful in tests.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Named returns a named sub-logger
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		Logger:      l.Logger.Named(name),
		serviceName: l.serviceName,
	}
}

// WithTransaction returns a logger with transaction context
func (l *Logger) WithTransaction(txID, sender string) *Logger {
	return &Logger{
		Logger: l.With(
			zap.String("transaction_id", txID),
			zap.String("sender", sender),
		),
		serviceName: l.serviceName,
	}
}

// ScreeningStarted logs the start of a screening operation
func (l *Logger) ScreeningStarted(txID, sender string) {
	l.Info("screening started",
		zap.String("transaction_id", txID),
		zap.String("sender", sender),
	)
}

// ScreeningCompleted logs the final decision for a transaction
func (l *Logger) ScreeningCompleted(txID, decision string, riskScore int, durationMs int64) {
	l.Info("screening completed",
		zap.String("transaction_id", txID),
		zap.String("decision", decision),
		zap.Int("risk_score", riskScore),
		zap.Int64("duration_ms", durationMs),
	)
}

// SanctionsHit logs a sanctions match, always at warn level
func (l *Logger) SanctionsHit(txID string, reasons []string) {
	l.Warn("sanctions match",
		zap.String("transaction_id", txID),
		zap.Strings("reasons", reasons),
	)
}

// RulesReplaced logs a rules configuration replacement
func (l *Logger) RulesReplaced() {
	l.Info("rules configuration replaced")
}

// BatchCompleted logs the summary of a batch screening run
func (l *Logger) BatchCompleted(total, approved, denied, review int) {
	l.Info("batch screening completed",
		zap.Int("total", total),
		zap.Int("approved", approved),
		zap.Int("denied", denied),
		zap.Int("review", review),
	)
}

// Helper field functions

// ErrorField creates an error field
func ErrorField(err error) zap.Field {
	return zap.Error(err)
}

// StringField creates a string field
func StringField(key, value string) zap.Field {
	return zap.String(key, value)
}

// IntField creates an int field
func IntField(key string, value int) zap.Field {
	return zap.Int(key, value)
}
