package layout

import "sync"

// SizeSignal fans container size observations out to subscribers. It is the
// server-side counterpart of a ResizeObserver on a tile's container.
type SizeSignal struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Size)
	last   Size
	seen   bool
}

// NewSizeSignal creates an empty signal
func NewSizeSignal() *SizeSignal {
	return &SizeSignal{subs: make(map[int]func(Size))}
}

// Subscribe registers fn and replays the latest observed size to it, the way
// an observer reports the current box on registration. The returned function
// removes the subscription; calling it more than once is harmless.
func (s *SizeSignal) Subscribe(fn func(Size)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	last, seen := s.last, s.seen
	s.mu.Unlock()

	if seen {
		fn(last)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Emit delivers size to every current subscriber synchronously
func (s *SizeSignal) Emit(size Size) {
	s.mu.Lock()
	s.last, s.seen = size, true
	fns := make([]func(Size), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(size)
	}
}

// Subscribers returns the number of live subscriptions
func (s *SizeSignal) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
