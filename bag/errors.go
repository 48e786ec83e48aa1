package bag

import "errors"

// Ошибки мешка. Обе означают ошибку программиста, а не временный сбой: повторять вызов бессмысленно.
var (
	ErrEmpty     = errors.New("cannot draw from an empty bag: add items before requesting values") // Возникает при вызове Next у пустого мешка.
	ErrExhausted = errors.New("all items of the current pass are used: call Reset first")     // Возникает при вызове Next после того, как проход выбран с markUsed.
)
