package provider

import (
	"crypto/rand"
	"math/big"
)

// StatusFunc produces the operational status attached to a mapped flight.
type StatusFunc func() string

// SyntheticStatuses are the demo values drawn by SyntheticStatus. The
// upstream offers API has no status feed.
var SyntheticStatuses = []string{"On Time", "Delayed", "Scheduled"}

// SyntheticStatus draws uniformly from SyntheticStatuses. The result is demo
// data with no operational meaning.
func SyntheticStatus(rng *SafeRand) StatusFunc {
	return func() string {
		return SyntheticStatuses[rng.Intn(len(SyntheticStatuses))]
	}
}

type SafeRand struct{}

func NewSafeRand() *SafeRand {
	return &SafeRand{}
}

func (s *SafeRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	value, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(value.Int64())
}
