package bagdraw

import (
	"context"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/domain"
)

type UseCase interface {
	Draw(ctx context.Context, markUsed bool) (domain.Draw, error)
}
