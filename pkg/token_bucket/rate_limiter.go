package token_bucket

import (
	"sync"

	"fastfeet/pkg/clock"
)

// TokenBucket пропускает не больше capacity запросов подряд,
// токены восстанавливаются со скоростью refillRate в секунду.
// Дробные токены копятся между вызовами.
type TokenBucket struct {
	mu         sync.Mutex
	clock      clock.Clock
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill int64 // unix nano
}

func NewTokenBucket(capacity int, refillRate float64, clk clock.Clock) *TokenBucket {
	if clk == nil {
		clk = clock.Real(nil)
	}
	return &TokenBucket{
		clock:      clk,
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: clk.Now().UnixNano(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.clock.Now().UnixNano()
	elapsed := float64(now-t.lastRefill) / 1e9
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now

	t.tokens = min(t.capacity, t.tokens+elapsed*t.refillRate)
}
