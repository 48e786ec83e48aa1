package seeder

// Seeder выдаёт сид для генератора, когда он не задан в конфигурации.
// Сид логируется, чтобы прогон можно было повторить.
type Seeder interface {
	Seed() uint64
}
