package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment, so every log statement inside a request
// carries the case context (ccd_case_id, appeal_status, etc.) without each call site
// repeating it.
type LogFields struct {
	CcdCaseID    *string // CCD case identifier
	UserID       *string // IDAM user id of the appellant
	EventID      *string // CCD event being submitted (e.g. "submitAppeal")
	AppealStatus *string // Effective appeal status
	Component    string  // Component name (OTel semantic convention style, e.g. "aip.service.update_appeal")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

// mergeFields merges two LogFields, preferring non-nil/non-empty values from 'new'.
func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.CcdCaseID != nil {
		result.CcdCaseID = new.CcdCaseID
	}
	if new.UserID != nil {
		result.UserID = new.UserID
	}
	if new.EventID != nil {
		result.EventID = new.EventID
	}
	if new.AppealStatus != nil {
		result.AppealStatus = new.AppealStatus
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{CcdCaseID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
// Useful for logging potentially long strings like payloads or error messages.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
