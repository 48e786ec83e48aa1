package bag

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/chrisyarbrough/SharpShuffleBag/randsource"
)

// scripted выдаёт заранее заданные ответы по очереди, независимо от аргументов.
func scripted(answers ...int) randsource.RangeSource {
	return randsource.RangeFunc(func(int, int) int {
		v := answers[0]
		answers = answers[1:]
		return v
	})
}

func TestShuffleIsPermutation(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := slices.Clone(want)

	require.NoError(t, Shuffle(got, WithSource(randsource.NewSeededSystem(21))))

	slices.Sort(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shuffle lost elements (-want +got):\n%s", diff)
	}
}

func TestShuffleWithLiteralSources(t *testing.T) {
	var variants = []struct {
		name   string
		source randsource.RangeSource
		want   []string
	}{
		{"always zero", randsource.NewFixedSequence(0), []string{"b", "c", "a"}},
		{"reversal", scripted(0, 1, 0), []string{"c", "b", "a"}},
		{"identity", scripted(2, 1, 0), []string{"a", "b", "c"}},
	}

	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			got := []string{"a", "b", "c"}
			require.NoError(t, Shuffle(got, WithSource(tc.source)))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestShuffleEmptyAndSingle(t *testing.T) {
	var empty []int
	require.NoError(t, Shuffle(empty, WithSource(randsource.NewFixedSequence())))

	single := []int{5}
	require.NoError(t, Shuffle(single, WithSource(randsource.NewFixedSequence(0))))
	require.Equal(t, []int{5}, single)
}

func TestShuffleRejectsMisbehavingSource(t *testing.T) {
	got := []int{1, 2, 3}
	err := Shuffle(got, WithSource(randsource.RangeFunc(func(_, maxExclusive int) int { return maxExclusive })))
	require.ErrorIs(t, err, randsource.ErrRangeViolation)
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestShuffleLeavesSliceIntactOnLaterViolation(t *testing.T) {
	calls := 0
	src := randsource.RangeFunc(func(minInclusive, maxExclusive int) int {
		calls++
		if calls < 3 {
			return minInclusive
		}
		return maxExclusive
	})

	got := []int{1, 2, 3, 4}
	err := Shuffle(got, WithSource(src))
	require.ErrorIs(t, err, randsource.ErrRangeViolation)
	require.Equal(t, 3, calls)
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestShuffleUsesContextDefault(t *testing.T) {
	ctx := randsource.NewContext(randsource.NewFixedSequence(0))
	got := []string{"a", "b", "c"}
	require.NoError(t, Shuffle(got, WithContext(ctx)))
	require.Equal(t, []string{"b", "c", "a"}, got)
}
