package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/logging"
)

// LoggerMiddleware создаёт middleware для структурированного логирования HTTP запросов.
// Добавляет в контекст request ID, путь, метод и измеряет время выполнения запроса.
// Метрики запросов собирает MetricsMiddleware.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Генерируем уникальный ID для запроса
		requestID := uuid.New()
		slog.InfoContext(ctx, fmt.Sprintf("Start [%s] request processing", requestID.String()))
		start := time.Now()

		// Добавляем метаданные запроса в контекст для последующего логирования
		ctx = logging.WithLogRequestID(ctx, requestID.String())
		ctx = logging.WithLogRequestPath(ctx, getEndpoint(r))
		ctx = logging.WithLogRequestMethod(ctx, r.Method)

		rw := &responseWriter{w, http.StatusOK}
		r = r.WithContext(ctx)

		next.ServeHTTP(rw, r)

		timeServe := time.Since(start)
		ctx = r.Context()
		ctx = logging.WithLogRequestStatus(ctx, rw.statusCode)
		ctx = logging.WithLogRequestDuration(ctx, timeServe.String())

		slog.InfoContext(ctx, fmt.Sprintf("Ended [%s] request processing", requestID.String()))
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
