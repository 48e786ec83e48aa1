package bagdraw

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/http/handler/common"
)

// Handler реализует POST /bag/draw. Параметр mark_used=true помечает элемент использованным до сброса.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/draw", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	markUsed := false
	if raw := r.URL.Query().Get("mark_used"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return common.NewBadRequestError("VALIDATION_ERROR", "mark_used должен быть true или false")
		}
		markUsed = v
	}
	d, err := h.useCase.Draw(r.Context(), markUsed)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, d)
	return nil
}
