package bag

import "github.com/chrisyarbrough/SharpShuffleBag/randsource"

// Shuffle перемешивает s на месте алгоритмом Fisher-Yates.
// Источник выбирается теми же опциями, что и у мешка.
//
// Все индексы запрашиваются и проверяются до первой перестановки:
// при ошибке s остаётся в исходном порядке, как и мешок после неудачного Next.
func Shuffle[E any](s []E, opts ...Option) error {
	src := newOptions(opts).resolve()
	checked := randsource.Checked(src)

	picks := make([]int, len(s))
	for n := len(s); n >= 1; n-- {
		k := src.Range(0, n)
		if checked {
			if err := randsource.Verify(src, k, 0, n); err != nil {
				return err
			}
		}
		picks[n-1] = k
	}

	for n := len(s); n >= 1; n-- {
		k := picks[n-1]
		s[k], s[n-1] = s[n-1], s[k]
	}
	return nil
}
