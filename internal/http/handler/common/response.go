package common

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/chrisyarbrough/SharpShuffleBag/bag"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/domain"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/logging"
	"github.com/chrisyarbrough/SharpShuffleBag/randsource"
)

type APIError struct {
	Error APIErrorBody `json:"error"`
}

type APIErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON отправляет JSON-ответ с указанным статус-кодом.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// HTTPError описывает контролируемую HTTP-ошибку.
type HTTPError struct {
	status  int
	code    string
	message string
}

func (e *HTTPError) Error() string {
	return e.message
}

// NewHTTPError создаёт новую HTTP-ошибку.
func NewHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{
		status:  status,
		code:    code,
		message: message,
	}
}

// NewBadRequestError создаёт 400 ошибку.
func NewBadRequestError(code, message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, code, message)
}

// WithErrorHandling оборачивает обработчик, централизуя выдачу ошибок.
// Преобразует доменные ошибки в HTTP-ответы с соответствующими статус-кодами.
func WithErrorHandling(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				RespondJSON(w, httpErr.status, APIError{
					Error: APIErrorBody{Code: httpErr.code, Message: httpErr.message},
				})
				return
			}
			WriteDomainError(w, r, err)
		}
	}
}

// WriteDomainError преобразует ошибки мешка в HTTP-ответы.
// Ошибки сравниваются через errors.Is: сервис оборачивает их контекстом выборки.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := logging.ErrorCtx(r.Context(), err)
	requestID := chimw.GetReqID(r.Context())

	switch {
	case errors.Is(err, bag.ErrEmpty), errors.Is(err, domain.ErrNoItems):
		slog.DebugContext(ctx, "bag is empty", "request_id", requestID, "error", err)
		RespondJSON(w, http.StatusConflict, APIError{Error: APIErrorBody{Code: "BAG_EMPTY", Message: err.Error()}})
	case errors.Is(err, bag.ErrExhausted):
		slog.DebugContext(ctx, "pass exhausted", "request_id", requestID, "error", err)
		RespondJSON(w, http.StatusConflict, APIError{Error: APIErrorBody{Code: "PASS_EXHAUSTED", Message: err.Error()}})
	case errors.Is(err, randsource.ErrRangeViolation):
		slog.ErrorContext(ctx, "random source violated range contract", "request_id", requestID, "error", err)
		RespondJSON(w, http.StatusInternalServerError, APIError{Error: APIErrorBody{Code: "RANGE_VIOLATION", Message: err.Error()}})
	default:
		slog.ErrorContext(ctx, "unhandled domain error", "request_id", requestID, "error", err)
		RespondJSON(w, http.StatusInternalServerError, APIError{Error: APIErrorBody{Code: "INTERNAL_ERROR", Message: "internal server error"}})
	}
}
