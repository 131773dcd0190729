package keylogger

import (
	"math/rand"
	"sync"
	"time"

	"github.com/aayushbajaj/keyoverlay/internal/keys"
)

// Synthetic is a Source that presses the given keys in a random rhythm. It
// needs no OS permissions and backs the demo mode.
type Synthetic struct {
	Codes   []keys.Code
	Seed    int64
	MinHold time.Duration
	MaxHold time.Duration
	MinGap  time.Duration
	MaxGap  time.Duration
	Clock   func() time.Time

	mu   sync.Mutex
	done chan struct{}
	wg   sync.WaitGroup
}

// NewSynthetic returns a source with tap-like default timings.
func NewSynthetic(codes []keys.Code, seed int64) *Synthetic {
	return &Synthetic{
		Codes:   codes,
		Seed:    seed,
		MinHold: 40 * time.Millisecond,
		MaxHold: 400 * time.Millisecond,
		MinGap:  60 * time.Millisecond,
		MaxGap:  700 * time.Millisecond,
	}
}

// Start launches one goroutine per key.
func (s *Synthetic) Start() (<-chan Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return nil, ErrAlreadyRunning
	}

	clock := s.Clock
	if clock == nil {
		clock = time.Now
	}

	out := make(chan Event, bufferSize)
	done := make(chan struct{})
	s.done = done

	for i, code := range s.Codes {
		s.wg.Add(1)
		rng := rand.New(rand.NewSource(s.Seed + int64(i)))
		go s.run(code, rng, clock, out, done)
	}

	go func() {
		s.wg.Wait()
		close(out)
	}()
	return out, nil
}

func (s *Synthetic) run(code keys.Code, rng *rand.Rand, clock func() time.Time, out chan<- Event, done <-chan struct{}) {
	defer s.wg.Done()

	kind := Press
	wait := between(rng, s.MinGap, s.MaxGap)
	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		select {
		case <-done:
			return
		case <-timer.C:
		}

		select {
		case out <- Event{Kind: kind, Code: code, Time: clock()}:
		case <-done:
			return
		}

		if kind == Press {
			kind = Release
			wait = between(rng, s.MinHold, s.MaxHold)
		} else {
			kind = Press
			wait = between(rng, s.MinGap, s.MaxGap)
		}
		timer.Reset(wait)
	}
}

// Stop ends every key goroutine; the channel closes once they return.
func (s *Synthetic) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		select {
		case <-s.done:
		default:
			close(s.done)
		}
	}
}

func between(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Int63n(int64(hi-lo)))
}
