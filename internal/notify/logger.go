package notify

import "go.uber.org/zap"

// Logger forwards events to a zap logger. Error events are logged at error
// level, everything else at info.
type Logger struct {
	lg *zap.Logger
}

// NewLogger returns a Logger sink.
func NewLogger(lg *zap.Logger) *Logger {
	return &Logger{lg: lg}
}

// Notify implements Sink.
func (s *Logger) Notify(e Event) {
	fields := []zap.Field{zap.String("kind", string(e.Kind))}
	if e.Amount.Valid {
		fields = append(fields, zap.Stringer("amount", e.Amount.Decimal))
	}

	if e.Kind == KindError {
		s.lg.Error(e.Message, fields...)
		return
	}
	s.lg.Info(e.Message, fields...)
}
