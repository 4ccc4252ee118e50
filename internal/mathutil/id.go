package mathutil

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

type rngReader struct {
	rng *rand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Uint32())
	}
	return len(p), nil
}

// NewID draws a version 4 UUID from rng so seeded generation yields reproducible ids
func NewID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rngReader{rng})
	if err != nil {
		// rngReader never fails
		panic(err)
	}
	return id.String()
}
