package bagstatus

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/http/handler/common"
)

// Handler реализует GET /bag/status.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Get("/status", h.handle)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.useCase.Status(r.Context()))
}
