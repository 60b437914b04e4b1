package rng

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number in [0, n)
	Intn(n int) int
}

// Crypto draws from crypto/rand and is the source used to shuffle real tables
type Crypto struct{}

// Intn returns a random number in [0, n)
// It panics if n <= 0.
func (Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Seeded returns a reproducible generator
// Use it for tests and simulations only, never to shuffle a real table.
func Seeded(seed int64) Generator {
	return mrand.New(mrand.NewSource(seed)) // nolint:gosec
}
