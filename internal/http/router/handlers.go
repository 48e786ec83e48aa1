package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bagdraw "github.com/chrisyarbrough/SharpShuffleBag/internal/http/handler/bag_draw"
	bagreset "github.com/chrisyarbrough/SharpShuffleBag/internal/http/handler/bag_reset"
	bagstatus "github.com/chrisyarbrough/SharpShuffleBag/internal/http/handler/bag_status"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/http/handler/common"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/http/middleware"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/service"
)

// Handler агрегирует HTTP-эндпоинты.
type Handler struct {
	service *service.Service
}

func New(service *service.Service) *Handler {
	return &Handler{service: service}
}

// Router возвращает готовый chi.Router со всеми зарегистрированными маршрутами и middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	// Middleware применяются в порядке объявления
	r.Use(chimw.RequestID)              // Добавляет уникальный ID каждому запросу
	r.Use(chimw.RealIP)                 // Определяет реальный IP клиента
	r.Use(middleware.PanicMiddleware)   // Перехватывает паники
	r.Use(middleware.LoggerMiddleware)  // Логирует все запросы
	r.Use(middleware.MetricsMiddleware) // Собирает метрики Prometheus

	// Health check: мешок без элементов считается неработоспособным
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.HealthCheck(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "health check failed", "error", err)
			common.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
		common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	h.registerBagRoutes(r)

	return r
}

func (h *Handler) registerBagRoutes(r chi.Router) {
	r.Route("/bag", func(router chi.Router) {
		bagstatus.New(h.service).Register(router)
		bagdraw.New(h.service).Register(router)
		bagreset.New(h.service).Register(router)
	})
}
