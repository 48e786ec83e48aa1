package randomizer

import "github.com/chrisyarbrough/SharpShuffleBag/randsource"

// Randomizer предоставляет генератор среды выполнения под контрактом randsource.
type Randomizer interface {
	randsource.RangeSource
	randsource.ValueSource
}
