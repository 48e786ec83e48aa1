package bag

import "github.com/chrisyarbrough/SharpShuffleBag/randsource"

// Option настраивает источник случайности для мешка или Shuffle.
type Option func(*options)

type options struct {
	source  randsource.RangeSource
	context *randsource.Context
}

// WithSource задаёт собственный источник. Без него используется источник по умолчанию из контекста.
func WithSource(src randsource.RangeSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithContext задаёт контекст, из которого берётся источник по умолчанию.
// Без него используется randsource.Shared.
func WithContext(ctx *randsource.Context) Option {
	return func(o *options) {
		o.context = ctx
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// resolve выбирает источник в момент использования, а не при создании.
func (o options) resolve() randsource.RangeSource {
	if o.source != nil {
		return o.source
	}
	if o.context != nil {
		return o.context.Default()
	}
	return randsource.Shared.Default()
}
