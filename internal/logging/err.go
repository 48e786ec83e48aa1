package logging

import (
	"context"
	"errors"
	"log/slog"
)

// errorWithLogCtx переносит контекст логирования вместе с ошибкой через границы вызовов.
type errorWithLogCtx struct {
	next error
	ctx  logCtx
}

func (e *errorWithLogCtx) Error() string {
	return e.next.Error()
}

func (e *errorWithLogCtx) Unwrap() error {
	return e.next
}

// WrapError запоминает в ошибке контекст логирования из ctx.
// Повторная обёртка не нужна: если err уже несёт контекст, он сохраняется.
func WrapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var existing *errorWithLogCtx
	if errors.As(err, &existing) {
		return err
	}
	c, _ := ctx.Value(key).(logCtx)
	return &errorWithLogCtx{next: err, ctx: c}
}

// ErrorCtx возвращает ctx с контекстом логирования, сохранённым в ошибке.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *errorWithLogCtx
	if errors.As(err, &e) {
		return context.WithValue(ctx, key, e.ctx)
	}
	return ctx
}

// LogError пишет ошибку в лог с контекстом, сохранённым в ней.
func LogError(ctx context.Context, msg string, err error) {
	slog.ErrorContext(ErrorCtx(ctx, err), msg, "error", err)
}
