// Package randsource описывает источник случайных индексов, на котором строится мешок.
//
// Контракт узкий: Range(min, max) возвращает число из полуинтервала [min, max),
// а при min == max возвращает min. Мешок опирается на этот контракт, поэтому
// сторонние реализации обязаны соблюдать его в точности.
package randsource

// RangeSource выдаёт случайное целое в диапазоне [minInclusive, maxExclusive).
// Вызывающий гарантирует minInclusive <= maxExclusive.
// Если minInclusive == maxExclusive, возвращается minInclusive.
type RangeSource interface {
	Range(minInclusive, maxExclusive int) int
}

// ValueSource выдаёт случайное число с плавающей точкой в [0, 1).
type ValueSource interface {
	Value() float64
}

// RangeFunc позволяет использовать обычную функцию как RangeSource.
type RangeFunc func(minInclusive, maxExclusive int) int

// Range вызывает f(minInclusive, maxExclusive).
func (f RangeFunc) Range(minInclusive, maxExclusive int) int {
	return f(minInclusive, maxExclusive)
}

// trusted помечает встроенные генераторы, корректные по построению.
type trusted interface {
	trustedRange()
}

// Checked сообщает, нужно ли проверять значения источника через Verify.
// Встроенные генераторы не проверяются, любые другие источники проверяются.
func Checked(src RangeSource) bool {
	_, ok := src.(trusted)
	return !ok
}
