package randsource

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedSequenceReturnsAnswerByMin(t *testing.T) {
	source := NewFixedSequence(3, 5, 7)
	require.Equal(t, 3, source.Range(0, 3))
	require.Equal(t, 5, source.Range(1, 3))
	require.Equal(t, 7, source.Range(2, 3))
}

func TestFixedSequencePanicsOutsideSequence(t *testing.T) {
	source := NewFixedSequence(1)
	require.Panics(t, func() { source.Range(1, 2) })
}

func TestFixedSequenceCopiesInput(t *testing.T) {
	answers := []int{0, 1}
	source := NewFixedSequence(answers...)
	answers[0] = 9
	require.Equal(t, 0, source.Range(0, 1))
}

func TestVerify(t *testing.T) {
	src := RangeFunc(func(minInclusive, _ int) int { return minInclusive })

	var variants = []struct {
		name         string
		value        int
		minInclusive int
		maxExclusive int
		violation    bool
	}{
		{"degenerate range returns min", 4, 4, 4, false},
		{"degenerate range returns other", 5, 4, 4, true},
		{"lower bound", 0, 0, 3, false},
		{"upper bound is exclusive", 3, 0, 3, true},
		{"inside", 2, 0, 3, false},
		{"below min", -1, 0, 3, true},
	}

	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			err := Verify(src, tc.value, tc.minInclusive, tc.maxExclusive)
			if !tc.violation {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrRangeViolation)
			var violation *RangeViolationError
			require.True(t, errors.As(err, &violation))
			require.Equal(t, tc.value, violation.Value)
			require.Equal(t, tc.minInclusive, violation.Min)
			require.Equal(t, tc.maxExclusive, violation.Max)
			require.Contains(t, err.Error(), "randsource.RangeFunc returned")
		})
	}
}

func TestCheckedExemptsBuiltinGenerators(t *testing.T) {
	require.False(t, Checked(NewSeededSystem(1)))
	require.False(t, Checked(NewMersenneTwister(1)))
	require.True(t, Checked(NewFixedSequence(0)))
	require.True(t, Checked(RangeFunc(func(minInclusive, _ int) int { return minInclusive })))
}

func TestGeneratorsStayInRange(t *testing.T) {
	sources := map[string]RangeSource{
		"pcg":     NewSeededSystem(42),
		"mt19937": NewMersenneTwister(42),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				v := src.Range(3, 10)
				require.NoError(t, Verify(src, v, 3, 10))
			}
			require.Equal(t, 5, src.Range(5, 5))
		})
	}
}

func TestGeneratorsHandleWideRanges(t *testing.T) {
	sources := map[string]RangeSource{
		"pcg":     NewSeededSystem(1),
		"mt19937": NewMersenneTwister(1),
	}
	bounds := []struct {
		name                       string
		minInclusive, maxExclusive int
	}{
		{"whole int range", math.MinInt, math.MaxInt},
		{"negative half", math.MinInt, 0},
		{"positive half", 0, math.MaxInt},
		{"just over MaxInt", -1, math.MaxInt},
	}
	for name, src := range sources {
		for _, b := range bounds {
			t.Run(name+"/"+b.name, func(t *testing.T) {
				for i := 0; i < 200; i++ {
					v := src.Range(b.minInclusive, b.maxExclusive)
					require.NoError(t, Verify(src, v, b.minInclusive, b.maxExclusive))
				}
			})
		}
	}
}

func TestWideRangeCoversBothSigns(t *testing.T) {
	for _, src := range []RangeSource{NewSeededSystem(3), NewMersenneTwister(3)} {
		var negative, positive bool
		for i := 0; i < 200 && !(negative && positive); i++ {
			v := src.Range(math.MinInt, math.MaxInt)
			negative = negative || v < 0
			positive = positive || v > 0
		}
		require.True(t, negative, "%T never produced a negative value", src)
		require.True(t, positive, "%T never produced a positive value", src)
	}
}

func TestGeneratorsCoverWholeRange(t *testing.T) {
	src := NewSeededSystem(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		seen[src.Range(0, 4)] = true
	}
	require.Len(t, seen, 4)
}

func TestSeededGeneratorsAreReproducible(t *testing.T) {
	a, b := NewSeededSystem(99), NewSeededSystem(99)
	m1, m2 := NewMersenneTwister(99), NewMersenneTwister(99)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Range(0, 1000), b.Range(0, 1000))
		require.Equal(t, m1.Range(0, 1000), m2.Range(0, 1000))
	}
}

func TestValueSources(t *testing.T) {
	for _, src := range []ValueSource{NewSeededSystem(1), NewMersenneTwister(1)} {
		for i := 0; i < 100; i++ {
			v := src.Value()
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}
}

func TestContextSetDefault(t *testing.T) {
	ctx := NewContext(nil)
	require.IsType(t, &System{}, ctx.Default())

	fixed := NewFixedSequence(0)
	require.NoError(t, ctx.SetDefault(fixed))
	require.Same(t, fixed, ctx.Default())

	require.ErrorIs(t, ctx.SetDefault(nil), ErrNilSource)
	require.Same(t, fixed, ctx.Default())

	ctx.Reset()
	require.IsType(t, &System{}, ctx.Default())
}

func TestSharedContextProxies(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { require.NoError(t, SetDefault(prev)) })

	fixed := NewFixedSequence(0)
	require.NoError(t, SetDefault(fixed))
	require.Same(t, fixed, Shared.Default())
	require.ErrorIs(t, SetDefault(nil), ErrNilSource)
}
