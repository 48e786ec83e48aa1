package randsource

// Context хранит источник по умолчанию для всех потребителей, которым не передали свой.
// Синхронизации нет: замену источника нужно сериализовать снаружи.
type Context struct {
	current RangeSource
}

// NewContext создаёт контекст с указанным источником по умолчанию.
// Если def == nil, используется новый System с сидом от времени.
func NewContext(def RangeSource) *Context {
	if def == nil {
		def = NewSystem()
	}
	return &Context{current: def}
}

// Default возвращает текущий источник по умолчанию.
func (c *Context) Default() RangeSource {
	return c.current
}

// SetDefault заменяет источник по умолчанию. Потребители без своего источника
// увидят замену при следующем обращении.
func (c *Context) SetDefault(src RangeSource) error {
	if src == nil {
		return ErrNilSource
	}
	c.current = src
	return nil
}

// Reset возвращает контекст к свежему System, удобно в тестах.
func (c *Context) Reset() {
	c.current = NewSystem()
}

// Shared: общий контекст процесса.
var Shared = NewContext(nil)

// Default возвращает источник по умолчанию общего контекста.
func Default() RangeSource {
	return Shared.Default()
}

// SetDefault заменяет источник по умолчанию общего контекста.
func SetDefault(src RangeSource) error {
	return Shared.SetDefault(src)
}
