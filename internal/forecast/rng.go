package forecast

import "math/rand"

// Source supplies the uniform noise used for volatility sampling.
// Uniform returns a value in [-1, 1). Injecting the source keeps seeded runs
// bit-exact reproducible.
type Source interface {
	Uniform() float64
}

type seededSource struct {
	r *rand.Rand
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed int64) Source {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Uniform() float64 {
	return s.r.Float64()*2 - 1
}
