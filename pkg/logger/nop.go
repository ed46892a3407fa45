package logger

import (
	"context"

	"github.com/google/uuid"
)

type nopLogger struct{}

// Nop returns a Logger that discards everything. Meant for tests and for
// components that make logging optional.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func (nopLogger) Debugw(string, ...any) {}
func (nopLogger) Infow(string, ...any)  {}
func (nopLogger) Warnw(string, ...any)  {}
func (nopLogger) Errorw(string, ...any) {}

func (n nopLogger) Ctx(context.Context) Logger { return n }
func (n nopLogger) With(...any) Logger         { return n }

func (nopLogger) WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithRequestID(ctx, requestID)
}

func (nopLogger) GenerateRequestID() string { return uuid.NewString() }

func (nopLogger) GetRequestID(ctx context.Context) string { return GetRequestID(ctx) }

func (nopLogger) LogAttrs(context.Context, Level, string, ...Attr) {}
