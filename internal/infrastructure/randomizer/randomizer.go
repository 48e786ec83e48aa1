package randomizer

import (
	"math/rand/v2"

	"github.com/chrisyarbrough/SharpShuffleBag/randsource"
)

type randomizerImpl struct{}

// New создаёт источник поверх глобального генератора math/rand/v2.
// Сид задаёт рантайм, генератор уже потокобезопасен, поэтому мьютекс не нужен.
func New() Randomizer {
	return &randomizerImpl{}
}

// Range возвращает случайное число из [minInclusive, maxExclusive).
func (r *randomizerImpl) Range(minInclusive, maxExclusive int) int {
	if maxExclusive <= minInclusive {
		return minInclusive
	}
	// Длина считается в uint64: для Range(math.MinInt, math.MaxInt) она больше math.MaxInt.
	n := uint64(maxExclusive) - uint64(minInclusive)
	return int(uint64(minInclusive) + rand.Uint64N(n)) // #nosec G404
}

// Value возвращает случайное число из [0, 1).
func (r *randomizerImpl) Value() float64 {
	return rand.Float64() // #nosec G404
}

// Install делает генератор среды выполнения источником по умолчанию в ctx.
// Если он уже установлен, ничего не меняет и возвращает false.
func Install(ctx *randsource.Context) (bool, error) {
	if _, ok := ctx.Default().(*randomizerImpl); ok {
		return false, nil
	}
	if err := ctx.SetDefault(New()); err != nil {
		return false, err
	}
	return true, nil
}
