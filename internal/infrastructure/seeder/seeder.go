package seeder

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"time"
)

type seederImpl struct {
	entropy io.Reader
	now     func() time.Time
}

// New создаёт сидер на crypto/rand с запасным вариантом от системных часов.
func New() Seeder {
	return &seederImpl{
		entropy: crand.Reader,
		now:     time.Now,
	}
}

// Seed возвращает сид из источника энтропии, а при его отказе из текущего времени.
func (s *seederImpl) Seed() uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(s.entropy, buf[:]); err == nil {
		return binary.LittleEndian.Uint64(buf[:])
	}
	return uint64(s.now().UnixNano())
}
