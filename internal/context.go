package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextEmployeeKey ctxKey = "employeeID"

func EmployeeIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if employeeID, ok := ctx.Value(ContextEmployeeKey).(string); ok {
		return employeeID
	}
	return ""
}

func ContextWithEmployeeID(ctx context.Context, employeeID string) context.Context {
	return context.WithValue(ctx, ContextEmployeeKey, employeeID)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
