package security

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType classifies security-relevant occurrences.
type EventType string

const (
	EventUnauthorizedAccess EventType = "unauthorized_access"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventValidationFailed   EventType = "validation_failed"
	EventRoleModified       EventType = "role_modified"
	EventAnonymityToggled   EventType = "anonymity_toggled"
	EventApplicationDeleted EventType = "application_deleted"
	EventServerError        EventType = "server_error"
)

// Severity is derived from the event type, never caller-provided.
type Severity string

const (
	SeverityINFO Severity = "INFO"
	SeverityWARN Severity = "WARN"
	SeverityHIGH Severity = "HIGH"
)

var eventSeverity = map[EventType]Severity{
	EventAnonymityToggled:   SeverityINFO,
	EventRateLimitTriggered: SeverityWARN,
	EventValidationFailed:   SeverityWARN,
	EventServerError:        SeverityWARN,
	EventUnauthorizedAccess: SeverityHIGH,
	EventRoleModified:       SeverityHIGH,
	EventApplicationDeleted: SeverityHIGH,
}

func GetSeverity(t EventType) Severity {
	if s, ok := eventSeverity[t]; ok {
		return s
	}
	return SeverityWARN
}

// Event is an audit record. It is always emitted to the structured log and
// optionally persisted; persistence failures never break the request.
type Event struct {
	Timestamp time.Time              `json:"timestamp"`
	Service   string                 `json:"service"`
	Level     string                 `json:"level"`
	Event     EventType              `json:"event"`
	UserID    string                 `json:"user_id,omitempty"`
	IP        string                 `json:"ip,omitempty"`
	UserAgent string                 `json:"user_agent,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Path      string                 `json:"path,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Logger emits audit events through zap and an optional persistence hook.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	persistFunc func(ctx context.Context, event Event) error
}

var defaultLogger *Logger

// Init builds the audit logger. Call once at startup.
func Init(serviceName string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	zl, err := config.Build()
	if err != nil {
		zl, _ = zap.NewProduction()
	}

	defaultLogger = &Logger{
		zapLogger:   zl,
		serviceName: serviceName,
	}
	return defaultLogger
}

// Default returns the process-wide audit logger, initializing a basic one
// if Init was never called (tests, tooling).
func Default() *Logger {
	if defaultLogger == nil {
		return Init(serviceName())
	}
	return defaultLogger
}

func serviceName() string {
	if name := os.Getenv("SERVICE_NAME"); name != "" {
		return name
	}
	return "jobportal-backend"
}

// SetPersistFunc installs the database persistence hook.
func (l *Logger) SetPersistFunc(f func(ctx context.Context, event Event) error) {
	l.persistFunc = f
}

// Log emits the event. The zap write is synchronous; persistence is
// best-effort and its failure is only logged.
func (l *Logger) Log(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = l.serviceName
	event.Level = string(GetSeverity(event.Event))

	fields := []zap.Field{
		zap.String("event", string(event.Event)),
		zap.String("severity", event.Level),
		zap.String("ip", event.IP),
		zap.String("request_id", event.RequestID),
		zap.String("path", event.Path),
	}
	if event.UserID != "" {
		fields = append(fields, zap.String("user_id", event.UserID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	switch GetSeverity(event.Event) {
	case SeverityINFO:
		l.zapLogger.Info("security_event", fields...)
	case SeverityHIGH:
		l.zapLogger.Error("security_event", fields...)
	default:
		l.zapLogger.Warn("security_event", fields...)
	}

	if l.persistFunc != nil {
		if err := l.persistFunc(ctx, event); err != nil {
			l.zapLogger.Warn("security_event_persist_failed", zap.Error(err))
		}
	}
}

// LogRateLimitTriggered records a rate-limit trip for the given client.
func (l *Logger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, path string) {
	l.Log(ctx, Event{
		Event:     EventRateLimitTriggered,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Path:      path,
	})
}

// LogUnauthorized records a rejected request (bad token, wrong role).
func (l *Logger) LogUnauthorized(ctx context.Context, ip, requestID, path, reason string) {
	l.Log(ctx, Event{
		Event:     EventUnauthorizedAccess,
		IP:        ip,
		RequestID: requestID,
		Path:      path,
		Details:   map[string]interface{}{"reason": reason},
	})
}

// LogAdminAction records privileged mutations (role changes, anonymity
// toggles, application deletion).
func (l *Logger) LogAdminAction(ctx context.Context, event EventType, adminUserID string, details map[string]interface{}) {
	l.Log(ctx, Event{
		Event:   event,
		UserID:  adminUserID,
		Details: details,
	})
}
