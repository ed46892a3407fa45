package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID returns a child context carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID extracts the request id from ctx, or "" when none is set.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func (a *Adapter) WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithRequestID(ctx, requestID)
}

func (a *Adapter) GetRequestID(ctx context.Context) string {
	return GetRequestID(ctx)
}

func (a *Adapter) GenerateRequestID() string {
	return uuid.New().String()
}

// contextLogger returns the base logger enriched with the request id, when
// one travels in the context.
func (a *Adapter) contextLogger(ctx context.Context) *zap.Logger {
	requestID := a.GetRequestID(ctx)
	if requestID == "" {
		return a.logger
	}
	return a.logger.With(zap.String("request_id", requestID))
}
