package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Real отдает время в loc: в нем считаются календарные сутки. nil = time.Local
func Real(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return realClock{loc: loc}
}

type realClock struct {
	loc *time.Location
}

func (c realClock) Now() time.Time { return time.Now().In(c.loc) }

// Fake - часы для тестов, время двигается вручную
type Fake struct {
	mu      sync.Mutex
	current time.Time
}

func NewFake(initial time.Time) *Fake {
	return &Fake{current: initial}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = t
}

func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
}
