package bag

// Iterator делает Size() выборок из мешка в случайном порядке.
//
// Это значение, а не указатель: создание итератора ничего не выделяет в куче.
// Каждый шаг вызывает Next(false): итератор не помечает элементы использованными
// и не исчерпывает проход, HasUnused после обхода не меняется. Reset перезапускает
// только этот итератор, не затрагивая другие.
//
// Ровно один раз каждый элемент выдаётся, только если обход начат в начале прохода.
// Если курсор мешка уже сдвинут, он переходит через конец в следующий проход,
// и элементы могут повториться. Чтобы израсходовать проход, используйте Drain.
type Iterator[T any] struct {
	bag   *Bag[T]
	index int
	value T
	err   error
}

// Next переходит к следующему элементу. Возвращает false, когда проход закончен или произошла ошибка.
func (it *Iterator[T]) Next() bool {
	var zero T

	count := it.bag.Size()
	if it.err == nil && it.index < count {
		value, err := it.bag.Next(false)
		if err == nil {
			it.value = value
			it.index++
			return true
		}
		it.err = err
	}

	it.index = count
	it.value = zero
	return false
}

// Value возвращает текущий элемент.
func (it *Iterator[T]) Value() T {
	return it.value
}

// Err возвращает ошибку, остановившую обход.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Reset перезапускает обход с начала.
func (it *Iterator[T]) Reset() {
	var zero T
	it.index = 0
	it.value = zero
	it.err = nil
}
