package internal

import (
	"context"
	"time"
)

type ctxKey string

const (
	ContextUserKey  ctxKey = "userID"
	ContextEmpNoKey ctxKey = "empNo"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if userID, ok := ctx.Value(ContextUserKey).(string); ok {
		return userID
	}
	return ""
}

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextUserKey, userID)
}

// EmpNoFromContext returns the employee number the auth middleware resolved
// for the request, or empty when the token carried none.
func EmpNoFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if empNo, ok := ctx.Value(ContextEmpNoKey).(string); ok {
		return empNo
	}
	return ""
}

func ContextWithEmpNo(ctx context.Context, empNo string) context.Context {
	return context.WithValue(ctx, ContextEmpNoKey, empNo)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
