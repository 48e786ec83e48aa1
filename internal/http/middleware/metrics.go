package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// httpRequestsTotal общее количество HTTP запросов
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Total number of status server requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// httpRequestDuration гистограмма длительности HTTP запросов
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Status server request duration in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"method", "endpoint", "status"},
	)

	// httpResponseSize размер тела ответа
	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "response_size_bytes",
			Help:      "Status server response size in bytes",
			Buckets:   []float64{64, 128, 256, 512, 1024, 4096},
		},
		[]string{"method", "endpoint"},
	)
)

const (
	namespace = "shufflebag"
	subsystem = "http"
)

// MetricsMiddleware собирает метрики для всех HTTP запросов.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Обёртка для ResponseWriter для получения статус-кода
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		// Обрабатываем запрос
		next.ServeHTTP(ww, r)

		// Получаем метрики
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ww.Status())
		method := r.Method
		endpoint := getEndpoint(r)

		// Записываем метрики
		httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration)

		// Эндпоинты мешка принимают только query-параметры, поэтому меряем ответ
		if n := ww.BytesWritten(); n > 0 {
			httpResponseSize.WithLabelValues(method, endpoint).Observe(float64(n))
		}
	})
}

// getEndpoint нормализует путь для метрик, используя шаблон маршрута вместо конкретного пути.
// Это позволяет группировать метрики по эндпоинтам, а не по конкретным значениям параметров
func getEndpoint(r *http.Request) string {
	if r == nil {
		return "/"
	}
	// Пытаемся получить шаблон маршрута (например, "/bag/{action}") из контекста
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	// Если шаблон недоступен, используем реальный путь
	if path := r.URL.Path; path != "" {
		return path
	}
	return "/"
}
