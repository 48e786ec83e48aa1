package domain

// SampleMode выбирает, какой пример запускается.
type SampleMode string

const (
	SampleModeCradle  SampleMode = "cradle"  // Консольный пример: проход за проходом по запросу пользователя.
	SampleModeSpawner SampleMode = "spawner" // Фоновый пример: выбор по таймеру без пометки использованных.
)

// SourceKind выбирает генератор случайных чисел.
type SourceKind string

const (
	SourcePCG      SourceKind = "pcg"
	SourceMT19937  SourceKind = "mt19937"
	SourcePlatform SourceKind = "platform"
)

// Draw описывает одну выборку из мешка.
type Draw struct {
	Item          string `json:"item"`
	Number        int    `json:"number"`         // Порядковый номер выборки с начала работы, с единицы.
	Pass          int    `json:"pass"`           // Номер прохода, к которому относится выборка, с единицы.
	PassCompleted bool   `json:"pass_completed"` // Выборка была последней в проходе.
}

// BagStatus хранит снимок состояния мешка и счётчиков примера.
type BagStatus struct {
	Mode      SampleMode `json:"mode"`
	Source    SourceKind `json:"source"`
	Size      int        `json:"size"`
	HasUnused bool       `json:"has_unused"`
	Draws     int        `json:"draws"`
	Passes    int        `json:"passes"`
	Resets    int        `json:"resets"`
}
