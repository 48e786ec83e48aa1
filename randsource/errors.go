package randsource

import (
	"errors"
	"fmt"
)

var (
	ErrNilSource      = errors.New("random source must not be nil")          // Возникает при попытке назначить nil вместо источника.
	ErrRangeViolation = errors.New("random source violated range contract") // Возникает, когда источник вернул значение вне диапазона.
)

// RangeViolationError описывает значение, нарушившее контракт RangeSource.
type RangeViolationError struct {
	Source RangeSource
	Value  int
	Min    int
	Max    int
}

func (e *RangeViolationError) Error() string {
	return fmt.Sprintf(
		"%T returned %d: if min is less than max, the value must be between %d (minInclusive) and %d (maxExclusive); if min and max are equal, the value must be min",
		e.Source, e.Value, e.Min, e.Max,
	)
}

// Unwrap позволяет сравнивать ошибку с ErrRangeViolation через errors.Is.
func (e *RangeViolationError) Unwrap() error {
	return ErrRangeViolation
}

// Verify проверяет, что value, полученное от src для диапазона [minInclusive, maxExclusive), соблюдает контракт.
// Ничего не исправляет: нарушение возвращается как *RangeViolationError.
func Verify(src RangeSource, value, minInclusive, maxExclusive int) error {
	if value == minInclusive && minInclusive == maxExclusive {
		return nil
	}
	if value < minInclusive || value >= maxExclusive {
		return &RangeViolationError{Source: src, Value: value, Min: minInclusive, Max: maxExclusive}
	}
	return nil
}
