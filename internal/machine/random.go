package machine

import "math/rand/v2"

// RandomSource supplies the bytes used by RND.
type RandomSource interface {
	Byte() byte
}

type pcgSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed uint64) RandomSource {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

func (s *pcgSource) Byte() byte {
	return byte(s.rng.Uint32())
}

func newDefaultSource() RandomSource {
	return &pcgSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}
