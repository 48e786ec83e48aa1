package service

// DuplicateItems возвращает значения, встречающиеся в items больше одного раза, в порядке первого повтора.
// Мешок дубликаты не запрещает, но с ними не гарантирует отсутствие повторов подряд.
func DuplicateItems(items []string) []string {
	seen := make(map[string]int, len(items))
	var dups []string
	for _, item := range items {
		seen[item]++
		if seen[item] == 2 {
			dups = append(dups, item)
		}
	}
	return dups
}
