package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chrisyarbrough/SharpShuffleBag/bag"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/config"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/domain"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/logging"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/metrics"
	"github.com/chrisyarbrough/SharpShuffleBag/randsource"
)

// Service владеет мешком примера и сериализует доступ к нему:
// сам мешок не потокобезопасен, а его читают и пример, и HTTP-статус.
type Service struct {
	mu     sync.Mutex
	bag    *bag.Bag[string]
	mode   domain.SampleMode
	source domain.SourceKind

	draws  int
	passes int
	resets int
	inPass int // Сколько выборок сделано в текущем проходе.
}

// New создаёт сервис с мешком из cfg.Bag. Если src == nil, мешок берёт источник
// по умолчанию из randsource.Shared в момент каждой выборки.
func New(cfg config.Config, src randsource.RangeSource) *Service {
	var opts []bag.Option
	if src != nil {
		opts = append(opts, bag.WithSource(src))
	}
	b := bag.NewWithCapacity[string](cfg.Bag.Capacity, opts...)
	b.AddRange(cfg.Bag.Items...)

	if dups := DuplicateItems(cfg.Bag.Items); len(dups) > 0 {
		slog.Warn("bag contains duplicate items, consecutive draws may repeat", "duplicates", dups)
	}
	metrics.SetBagSize(b.Size())

	return &Service{
		bag:    b,
		mode:   cfg.Sample.Mode,
		source: cfg.Random.Source,
	}
}

// Draw достаёт следующий элемент. С markUsed=true проход заканчивается, когда HasUnused станет false.
func (s *Service) Draw(ctx context.Context, markUsed bool) (domain.Draw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.bag.Next(markUsed)
	if err != nil {
		if errors.Is(err, randsource.ErrRangeViolation) {
			metrics.IncRangeViolations()
		}
		ctx = logging.WithLogDraw(ctx, s.draws+1)
		return domain.Draw{}, logging.WrapError(ctx, fmt.Errorf("draw: %w", err))
	}

	s.draws++
	s.inPass++
	metrics.IncDraws(markUsed)

	d := domain.Draw{
		Item:   item,
		Number: s.draws,
		Pass:   s.passes + 1,
	}
	if s.inPass == s.bag.Size() {
		d.PassCompleted = true
		s.passes++
		s.inPass = 0
		metrics.IncPassesCompleted()
	}
	return d, nil
}

// Reset начинает новый проход.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bag.Reset()
	s.resets++
	s.inPass = 0
	metrics.IncResets()
	slog.DebugContext(ctx, "bag reset", "resets", s.resets)
}

// HasUnused сообщает, остались ли невыбранные элементы в текущем проходе.
func (s *Service) HasUnused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bag.HasUnused()
}

// Size возвращает число элементов в мешке.
func (s *Service) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bag.Size()
}

// HealthCheck сообщает, может ли мешок выдавать элементы.
func (s *Service) HealthCheck(context.Context) error {
	if s.Size() == 0 {
		return domain.ErrNoItems
	}
	return nil
}

// Status возвращает снимок состояния.
func (s *Service) Status(context.Context) domain.BagStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.BagStatus{
		Mode:      s.mode,
		Source:    s.source,
		Size:      s.bag.Size(),
		HasUnused: s.bag.HasUnused(),
		Draws:     s.draws,
		Passes:    s.passes,
		Resets:    s.resets,
	}
}
