package bagstatus

import (
	"context"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/domain"
)

type UseCase interface {
	Status(ctx context.Context) domain.BagStatus
}
