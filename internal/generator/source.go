package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

var errNonPositiveBound = errors.New("random bound must be positive")

// Source draws uniform integers in [0, n). Implementations must be safe for
// concurrent use.
type Source interface {
	IntN(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It holds no state.
type CryptoSource struct{}

// IntN returns a uniform value in [0, n) using crypto/rand.
func (CryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, errNonPositiveBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Default returns the process-wide source used when callers have no reason to pick one.
func Default() Source {
	return CryptoSource{}
}

// SeededSource is a deterministic PCG-backed source. Two sources created
// with the same seed produce the same sequence.
type SeededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource creates a SeededSource for the given seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{
		rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// IntN returns a uniform value in [0, n).
func (s *SeededSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, errNonPositiveBound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}

var (
	_ Source = CryptoSource{}
	_ Source = (*SeededSource)(nil)
)
