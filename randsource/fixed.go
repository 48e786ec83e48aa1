package randsource

import "fmt"

// FixedSequence: тестовый двойник: вместо случайного числа возвращает sequence[min].
// Аргумент max игнорируется, поэтому тест задаёт точную последовательность обменов в мешке.
type FixedSequence struct {
	sequence []int
}

// NewFixedSequence создаёт источник из готового списка ответов.
func NewFixedSequence(sequence ...int) *FixedSequence {
	return &FixedSequence{sequence: append([]int(nil), sequence...)}
}

// Range возвращает sequence[minInclusive].
func (f *FixedSequence) Range(minInclusive, _ int) int {
	if minInclusive < 0 || minInclusive >= len(f.sequence) {
		panic(fmt.Sprintf("fixed sequence of length %d has no answer for index %d", len(f.sequence), minInclusive))
	}
	return f.sequence[minInclusive]
}
