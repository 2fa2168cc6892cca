package layout

import "sync"

// TileScaler holds the live scale of one rendered tag. Observe is the only
// write path; it is normally driven by a SizeSignal subscription.
type TileScaler struct {
	mu          sync.Mutex
	scale       float64
	valid       bool
	writes      int
	unsubscribe func()
	onChange    func(float64)
}

// NewTileScaler returns a scaler at scale 1 (the master frame's own size)
// until a real container size is observed
func NewTileScaler() *TileScaler {
	return &TileScaler{scale: 1}
}

// Attach subscribes the scaler to a container signal, replacing any previous
// subscription
func (t *TileScaler) Attach(signal *SizeSignal) {
	t.Close()
	unsubscribe := signal.Subscribe(func(s Size) { t.Observe(s) })
	t.mu.Lock()
	t.unsubscribe = unsubscribe
	t.mu.Unlock()
}

// OnChange registers a callback run after every effective scale write
func (t *TileScaler) OnChange(fn func(scale float64)) {
	t.mu.Lock()
	t.onChange = fn
	t.mu.Unlock()
}

// Observe recomputes the scale for a new container size. Degenerate sizes
// are ignored and the last valid scale is kept. It returns true only when
// the stored scale actually changed.
func (t *TileScaler) Observe(container Size) bool {
	scale, ok := FitScale(container)
	if !ok {
		return false
	}

	t.mu.Lock()
	if t.valid && sameScale(t.scale, scale) {
		t.mu.Unlock()
		return false
	}
	t.scale = scale
	t.valid = true
	t.writes++
	fn := t.onChange
	t.mu.Unlock()

	if fn != nil {
		fn(scale)
	}
	return true
}

// Scale returns the current scale
func (t *TileScaler) Scale() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scale
}

// Transform returns the current scale as a uniform transform
func (t *TileScaler) Transform() Transform {
	return Transform{Scale: t.Scale()}
}

// Writes counts effective scale updates
func (t *TileScaler) Writes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writes
}

// Close drops the container subscription
func (t *TileScaler) Close() {
	t.mu.Lock()
	unsubscribe := t.unsubscribe
	t.unsubscribe = nil
	t.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
