package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/logging"
)

// RunSpawner раз в interval достаёт элемент без пометки использованным и пишет его в лог,
// отделяя проходы строкой "----". Останавливается после maxDraws выборок (0 означает без ограничения)
// или при отмене ctx.
func (s *Service) RunSpawner(ctx context.Context, interval time.Duration, maxDraws int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 0; maxDraws == 0 || n < maxDraws; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		d, err := s.Draw(ctx, false)
		if err != nil {
			return err
		}

		drawCtx := logging.WithLogItem(ctx, d.Item)
		drawCtx = logging.WithLogDraw(drawCtx, d.Number)
		drawCtx = logging.WithLogPass(drawCtx, d.Pass)
		slog.InfoContext(drawCtx, "item spawned")

		if d.PassCompleted {
			slog.InfoContext(logging.WithLogPass(ctx, d.Pass), "----")
		}
	}
	return nil
}
