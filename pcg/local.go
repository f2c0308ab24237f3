package pcg

import "sync"

var local struct {
	mu  sync.Mutex
	rng *FastRng
}

// WithLocal lends fn exclusive use of the process-wide generator. The
// generator is seeded from the clock on first use and never re-seeded. fn must
// not keep r after it returns.
func WithLocal(fn func(r *FastRng)) {
	local.mu.Lock()
	defer local.mu.Unlock()
	if local.rng == nil {
		local.rng = New()
	}
	fn(local.rng)
}
