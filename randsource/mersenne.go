package randsource

import (
	"math"
	"math/rand"
	"sync"

	"github.com/seehuhn/mt19937"
)

// MersenneTwister: источник на MT19937, для воспроизводимых последовательностей,
// совместимых с другими реализациями этого генератора.
type MersenneTwister struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMersenneTwister создаёт источник MT19937 с указанным сидом.
func NewMersenneTwister(seed int64) *MersenneTwister {
	rnd := rand.New(mt19937.New()) // #nosec G404
	rnd.Seed(seed)
	return &MersenneTwister{rnd: rnd}
}

func (m *MersenneTwister) Range(minInclusive, maxExclusive int) int {
	if maxExclusive <= minInclusive {
		return minInclusive
	}
	n := span(minInclusive, maxExclusive)
	m.mu.Lock()
	defer m.mu.Unlock()
	if n <= math.MaxInt64 {
		return shift(minInclusive, uint64(m.rnd.Int63n(int64(n))))
	}
	return shift(minInclusive, m.uint64n(n))
}

// uint64n выдаёт равномерное число из [0, n) для n больше math.MaxInt64,
// отбрасывая значения из неполного последнего блока. Вызывается под m.mu.
func (m *MersenneTwister) uint64n(n uint64) uint64 {
	threshold := -n % n
	for {
		if v := m.rnd.Uint64(); v >= threshold {
			return v % n
		}
	}
}

func (m *MersenneTwister) Value() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rnd.Float64()
}

func (*MersenneTwister) trustedRange() {}
