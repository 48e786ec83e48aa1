package bagreset

import (
	"context"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/domain"
)

type UseCase interface {
	Reset(ctx context.Context)
	Status(ctx context.Context) domain.BagStatus
}
