package stylecache

// Hooks defines event callbacks for cache operations
type Hooks struct {
	// OnHit is called when a cache key is found
	OnHit []OnHitHook

	// OnMiss is called when a cache key is not found
	OnMiss []OnMissHook

	// OnEvict is called when an entry is evicted by the LRU policy
	OnEvict []OnEvictHook

	// OnReset is called when the cache is emptied
	OnReset []OnResetHook
}

// Hook function type definitions
type (
	// OnHitHook is called when a cache hit occurs
	OnHitHook func(key, value string)

	// OnMissHook is called when a cache miss occurs
	OnMissHook func(key string)

	// OnEvictHook is called when an entry is evicted by the LRU policy
	OnEvictHook func(key, value string)

	// OnResetHook is called when the cache is emptied
	OnResetHook func()
)

// AddOnHit adds an OnHit hook
func (h *Hooks) AddOnHit(hook OnHitHook) {
	h.OnHit = append(h.OnHit, hook)
}

// AddOnMiss adds an OnMiss hook
func (h *Hooks) AddOnMiss(hook OnMissHook) {
	h.OnMiss = append(h.OnMiss, hook)
}

// AddOnEvict adds an OnEvict hook
func (h *Hooks) AddOnEvict(hook OnEvictHook) {
	h.OnEvict = append(h.OnEvict, hook)
}

// AddOnReset adds an OnReset hook
func (h *Hooks) AddOnReset(hook OnResetHook) {
	h.OnReset = append(h.OnReset, hook)
}

func (h *Hooks) invokeOnHit(key, value string) {
	for _, hook := range h.OnHit {
		if hook != nil {
			hook(key, value)
		}
	}
}

func (h *Hooks) invokeOnMiss(key string) {
	for _, hook := range h.OnMiss {
		if hook != nil {
			hook(key)
		}
	}
}

func (h *Hooks) invokeOnEvict(key, value string) {
	for _, hook := range h.OnEvict {
		if hook != nil {
			hook(key, value)
		}
	}
}

func (h *Hooks) invokeOnReset() {
	for _, hook := range h.OnReset {
		if hook != nil {
			hook()
		}
	}
}
