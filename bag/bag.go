// Package bag реализует «мешок с перемешиванием»: элементы набора выдаются в случайном порядке,
// каждый ровно один раз за проход, и последний элемент прохода никогда не совпадает
// с первым элементом следующего, если в наборе хотя бы два различных значения.
//
// Мешок не потокобезопасен: конкурентный доступ к одному мешку нужно сериализовать снаружи.
package bag

import (
	"fmt"
	"iter"

	"github.com/chrisyarbrough/SharpShuffleBag/randsource"
)

// Bag выдаёт случайную неповторяющуюся последовательность элементов набора.
//
// Гарантия неповторения держится только если элементы попарно различны.
// Мешок это не проверяет, с дубликатами он работает, но может выдать одно значение дважды подряд.
type Bag[T any] struct {
	// Элементы [0, cursor) уже выданы в текущем проходе, [cursor, len) ещё доступны.
	items  []T
	cursor int
	opts   options
}

// New создаёт пустой мешок.
func New[T any](opts ...Option) *Bag[T] {
	return &Bag[T]{opts: newOptions(opts)}
}

// NewWithCapacity создаёт пустой мешок с заранее выделенной памятью под capacity элементов.
func NewWithCapacity[T any](capacity int, opts ...Option) *Bag[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Bag[T]{
		items: make([]T, 0, capacity),
		opts:  newOptions(opts),
	}
}

// From создаёт мешок с копией items в исходном порядке.
func From[T any](items []T, opts ...Option) *Bag[T] {
	b := NewWithCapacity[T](len(items), opts...)
	b.items = append(b.items, items...)
	return b
}

// NewIndices создаёт мешок с индексами 0..n-1, удобно для выбора из другой коллекции.
func NewIndices(n int, opts ...Option) *Bag[int] {
	b := NewWithCapacity[int](n, opts...)
	for i := 0; i < n; i++ {
		b.items = append(b.items, i)
	}
	return b
}

// RandomSource возвращает собственный источник мешка,
// а если его нет, то текущий источник по умолчанию из контекста.
func (b *Bag[T]) RandomSource() randsource.RangeSource {
	return b.opts.resolve()
}

// SetRandomSource задаёт собственный источник мешка.
func (b *Bag[T]) SetRandomSource(src randsource.RangeSource) error {
	if src == nil {
		return randsource.ErrNilSource
	}
	b.opts.source = src
	return nil
}

// Size возвращает число элементов, включая уже выданные в текущем проходе.
func (b *Bag[T]) Size() int {
	return len(b.items)
}

// HasUnused сообщает, можно ли вызвать Next(true).
func (b *Bag[T]) HasUnused() bool {
	return b.cursor < len(b.items)
}

func (b *Bag[T]) Add(item T) {
	b.items = append(b.items, item)
}

func (b *Bag[T]) AddRange(items ...T) {
	b.items = append(b.items, items...)
}

// AddSeq добавляет все элементы последовательности.
func (b *Bag[T]) AddSeq(seq iter.Seq[T]) {
	for item := range seq {
		b.items = append(b.items, item)
	}
}

// Next возвращает следующий случайный элемент.
//
// С markUsed=true элемент помечается использованным до Reset: после Size() вызовов
// HasUnused станет false, и следующий Next вернёт ErrExhausted.
// С markUsed=false курсор идёт по кругу и мешок выдаёт элементы бесконечно, проход за проходом.
func (b *Bag[T]) Next(markUsed bool) (T, error) {
	var zero T

	count := len(b.items)
	if count == 0 {
		return zero, ErrEmpty
	}
	if b.cursor >= count {
		return zero, ErrExhausted
	}

	// В начале прохода последняя позиция исключается: там лежит последний элемент прошлого прохода.
	upper := count
	if b.cursor == 0 {
		upper = count - 1
	}

	src := b.RandomSource()
	randomIndex := src.Range(b.cursor, upper)
	if randsource.Checked(src) {
		if err := randsource.Verify(src, randomIndex, b.cursor, upper); err != nil {
			return zero, err
		}
	}

	// Выбранный элемент переносится на позицию курсора, всё ниже курсора в этом проходе больше не выбирается.
	current := b.items[randomIndex]
	b.items[randomIndex] = b.items[b.cursor]
	b.items[b.cursor] = current

	if markUsed {
		b.cursor++
	} else {
		b.cursor = (b.cursor + 1) % count
	}

	return current, nil
}

// Reset начинает новый проход. Порядок и состав элементов не меняются.
func (b *Bag[T]) Reset() {
	b.cursor = 0
}

// Clear удаляет все элементы.
func (b *Bag[T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
	b.cursor = 0
}

// Iter возвращает итератор по одному проходу мешка.
func (b *Bag[T]) Iter() Iterator[T] {
	return Iterator[T]{bag: b}
}

// All возвращает обход Iter в виде последовательности для range, с теми же оговорками:
// элементы не помечаются использованными, а обход с середины прохода может повторить элементы.
// Ошибка выборки молча завершает последовательность; если она важна, используйте Iter.
func (b *Bag[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := b.Iter()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Drain выдаёт элементы через Next(true), пока HasUnused не станет false.
func (b *Bag[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for b.HasUnused() {
			item, err := b.Next(true)
			if err != nil {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

func (b *Bag[T]) String() string {
	return fmt.Sprintf("Size = %d Cursor = %d", len(b.items), b.cursor)
}
