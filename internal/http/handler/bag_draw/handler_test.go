package bagdraw

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/chrisyarbrough/SharpShuffleBag/bag"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/domain"
)

type stubUseCase struct {
	markUsed bool
	calls    int
	err      error
}

func (s *stubUseCase) Draw(_ context.Context, markUsed bool) (domain.Draw, error) {
	s.markUsed = markUsed
	s.calls++
	if s.err != nil {
		return domain.Draw{}, s.err
	}
	return domain.Draw{Item: "Simba", Number: s.calls, Pass: 1}, nil
}

func serve(t *testing.T, useCase UseCase, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := chi.NewRouter()
	New(useCase).Register(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
	return rec
}

func TestHandler_DrawsWithoutMarkingByDefault(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	rec := serve(t, useCase, "/draw")

	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, useCase.markUsed)

	var got domain.Draw
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, domain.Draw{Item: "Simba", Number: 1, Pass: 1}, got)
}

func TestHandler_PassesMarkUsed(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	rec := serve(t, useCase, "/draw?mark_used=true")

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, useCase.markUsed)
}

func TestHandler_ValidatesMarkUsed(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	rec := serve(t, useCase, "/draw?mark_used=maybe")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, useCase.calls)
}

func TestHandler_MapsExhaustedPass(t *testing.T) {
	t.Parallel()

	rec := serve(t, &stubUseCase{err: bag.ErrExhausted}, "/draw?mark_used=1")

	require.Equal(t, http.StatusConflict, rec.Code)
}
