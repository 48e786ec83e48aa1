package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/config"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/domain"
	"github.com/chrisyarbrough/SharpShuffleBag/randsource"
)

type fixedSeeder uint64

func (s fixedSeeder) Seed() uint64 { return uint64(s) }

func sampleConfig(mode domain.SampleMode) config.Config {
	return config.Config{
		Bag:      config.BagConfig{Items: []string{"Whiskers", "Simba", "Kitty"}, Capacity: 3},
		Sample:   config.SampleConfig{Mode: mode, Interval: time.Millisecond, MaxDraws: 5},
		Random:   config.RandomConfig{Source: domain.SourcePCG, Seed: 42},
		Timeouts: config.TimeoutConfig{Shutdown: time.Second},
	}
}

func TestNewSourceUsesConfiguredSeed(t *testing.T) {
	shared := randsource.NewContext(nil)

	for _, kind := range []domain.SourceKind{domain.SourcePCG, domain.SourceMT19937} {
		t.Run(string(kind), func(t *testing.T) {
			cfg := config.RandomConfig{Source: kind, Seed: 7}
			a, err := newSource(context.Background(), cfg, fixedSeeder(1), shared)
			require.NoError(t, err)
			b, err := newSource(context.Background(), cfg, fixedSeeder(2), shared)
			require.NoError(t, err)

			for range 20 {
				require.Equal(t, a.Range(0, 1000), b.Range(0, 1000))
			}
		})
	}
}

func TestNewSourceDerivesSeed(t *testing.T) {
	shared := randsource.NewContext(nil)
	cfg := config.RandomConfig{Source: domain.SourcePCG}

	got, err := newSource(context.Background(), cfg, fixedSeeder(99), shared)
	require.NoError(t, err)

	want := randsource.NewSeededSystem(99)
	for range 20 {
		require.Equal(t, want.Range(0, 1000), got.Range(0, 1000))
	}
}

func TestNewSourceInstallsPlatformGenerator(t *testing.T) {
	shared := randsource.NewContext(nil)
	before := shared.Default()

	src, err := newSource(context.Background(), config.RandomConfig{Source: domain.SourcePlatform}, fixedSeeder(1), shared)
	require.NoError(t, err)
	require.Nil(t, src)
	require.NotSame(t, before, shared.Default())
}

func TestNewSourceRejectsUnknownKind(t *testing.T) {
	_, err := newSource(context.Background(), config.RandomConfig{Source: "dice"}, fixedSeeder(1), randsource.NewContext(nil))
	require.ErrorIs(t, err, domain.ErrUnknownSource)
}

func TestRunSpawnerWithoutServer(t *testing.T) {
	cfg := sampleConfig(domain.SampleModeSpawner)
	application, err := New(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	require.Nil(t, application.server)

	require.NoError(t, application.Run(context.Background()))
	require.Equal(t, 5, application.svc.Status(context.Background()).Draws)
}

func TestRunCradleStopsServer(t *testing.T) {
	cfg := sampleConfig(domain.SampleModeCradle)
	cfg.HTTP.Port = "0"
	var out bytes.Buffer

	application, err := New(context.Background(), cfg, strings.NewReader("n\n"), &out)
	require.NoError(t, err)
	require.NotNil(t, application.server)

	done := make(chan error, 1)
	go func() { done <- application.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after the sample finished")
	}
	require.Contains(t, out.String(), "There are 3 cats in the cradle.")
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := sampleConfig(domain.SampleModeSpawner)
	cfg.Sample.MaxDraws = 0

	application, err := New(context.Background(), cfg, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.NoError(t, application.Run(ctx))
}
