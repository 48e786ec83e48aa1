package randsource

import (
	"sync"
	"time"

	exprand "golang.org/x/exp/rand"
)

// System: источник по умолчанию на генераторе PCG.
// Защищён мьютексом, потому что общий экземпляр делят все мешки процесса.
type System struct {
	mu  sync.Mutex // Защищает состояние генератора
	rnd *exprand.Rand
}

// NewSystem создаёт источник с сидом от текущего времени.
func NewSystem() *System {
	return NewSeededSystem(uint64(time.Now().UnixNano()))
}

// NewSeededSystem создаёт источник с фиксированным сидом: одинаковый сид даёт одинаковую последовательность.
func NewSeededSystem(seed uint64) *System {
	src := &exprand.PCGSource{}
	src.Seed(seed)
	return &System{rnd: exprand.New(src)}
}

// Range возвращает случайное число из [minInclusive, maxExclusive).
func (s *System) Range(minInclusive, maxExclusive int) int {
	if maxExclusive <= minInclusive {
		return minInclusive
	}
	n := span(minInclusive, maxExclusive)
	s.mu.Lock()
	defer s.mu.Unlock()
	return shift(minInclusive, s.rnd.Uint64n(n))
}

// Value возвращает случайное число из [0, 1).
func (s *System) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (*System) trustedRange() {}

// span возвращает длину [minInclusive, maxExclusive) без переполнения int:
// для Range(math.MinInt, math.MaxInt) она больше math.MaxInt.
func span(minInclusive, maxExclusive int) uint64 {
	return uint64(maxExclusive) - uint64(minInclusive)
}

// shift возвращает minInclusive + offset по модулю 2^64, результат попадает в исходный диапазон.
func shift(minInclusive int, offset uint64) int {
	return int(uint64(minInclusive) + offset)
}
