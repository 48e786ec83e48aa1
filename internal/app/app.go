package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/config"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/domain"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/http/router"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/infrastructure/randomizer"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/infrastructure/seeder"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/logging"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/service"
	"github.com/chrisyarbrough/SharpShuffleBag/randsource"
)

// App отвечает за жизненный цикл примера и сервера статуса.
type App struct {
	cfg    config.Config
	svc    *service.Service
	server *http.Server // nil, если http.port не задан.
	in     io.Reader
	out    io.Writer
}

// New подготавливает все зависимости: генератор, мешок, сервис и, если задан порт, HTTP-сервер.
// in и out используются консольным примером.
func New(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) (*App, error) {
	src, err := newSource(ctx, cfg.Random, seeder.New(), randsource.Shared)
	if err != nil {
		return nil, fmt.Errorf("random source: %w", err)
	}

	svc := service.New(cfg, src)

	var srv *http.Server
	if cfg.HTTP.Port != "" {
		srv = &http.Server{
			Addr:         ":" + cfg.HTTP.Port,
			Handler:      router.New(svc).Router(),
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
		}
	}

	return &App{
		cfg:    cfg,
		svc:    svc,
		server: srv,
		in:     in,
		out:    out,
	}, nil
}

// Run запускает пример и сервер статуса. Сервер останавливается, когда пример завершился
// или ctx отменён; ошибка сервера отменяет пример.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	sampleCtx, stop := context.WithCancel(gctx)
	defer stop()

	if a.server != nil {
		g.Go(func() error {
			slog.Info("HTTP server listening", "addr", a.server.Addr)
			if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-sampleCtx.Done()
			// Graceful shutdown: даём серверу время завершить обработку текущих запросов
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Timeouts.Shutdown)
			defer cancel()
			if err := a.server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer stop()
		return a.runSample(sampleCtx)
	})

	return g.Wait()
}

func (a *App) runSample(ctx context.Context) error {
	ctx = logging.WithLogMode(ctx, string(a.cfg.Sample.Mode))
	ctx = logging.WithLogSource(ctx, string(a.cfg.Random.Source))
	ctx = logging.WithLogBagSize(ctx, a.svc.Size())
	slog.InfoContext(ctx, "sample started")

	var err error
	switch a.cfg.Sample.Mode {
	case domain.SampleModeSpawner:
		err = a.svc.RunSpawner(ctx, a.cfg.Sample.Interval, a.cfg.Sample.MaxDraws)
	default:
		err = a.svc.RunCradle(ctx, a.in, a.out)
	}
	if err != nil {
		return logging.WrapError(ctx, fmt.Errorf("sample %s: %w", a.cfg.Sample.Mode, err))
	}

	slog.InfoContext(ctx, "sample finished")
	return nil
}

// newSource создаёт генератор по настройкам. Для platform генератор среды выполнения
// ставится источником по умолчанию в shared, а мешок получает nil и берёт его оттуда.
func newSource(ctx context.Context, cfg config.RandomConfig, s seeder.Seeder, shared *randsource.Context) (randsource.RangeSource, error) {
	ctx = logging.WithLogSource(ctx, string(cfg.Source))

	if cfg.Source == domain.SourcePlatform {
		installed, err := randomizer.Install(shared)
		if err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "random source ready", "installed", installed)
		return nil, nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = s.Seed()
	}

	var src randsource.RangeSource
	switch cfg.Source {
	case domain.SourcePCG:
		src = randsource.NewSeededSystem(seed)
	case domain.SourceMT19937:
		src = randsource.NewMersenneTwister(int64(seed)) // #nosec G115
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, cfg.Source)
	}

	// Сид пишется в лог, чтобы прогон можно было повторить через RANDOM_SEED.
	slog.InfoContext(ctx, "random source ready", "seed", seed)
	return src, nil
}
