package utils

import (
	"math"
	"math/rand"
	"sync"
)

// LockedRand wraps math/rand so the candidate generator and scheduler can
// share one injected source across concurrent requests. Tests pin a seed.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Uniform draws from [min, max).
func (l *LockedRand) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return min + l.r.Float64()*(max-min)
}

// Round2 rounds a currency amount to 2 decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds durations to a tenth of an hour.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
