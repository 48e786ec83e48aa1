package domain

import "errors"

// Ошибки конфигурации примеров.
var (
	ErrUnknownSampleMode = errors.New("unknown sample mode")    // Возникает, если sample.mode не cradle и не spawner.
	ErrUnknownSource     = errors.New("unknown random source")  // Возникает, если random.source не pcg, mt19937 или platform.
	ErrNoItems           = errors.New("bag items must be set")  // Возникает, если в конфигурации нет ни одного элемента.
)
