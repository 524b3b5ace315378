package stylecache

import (
	"encoding/json"
	"net/http"
	"time"
)

// DebugResponse represents the JSON response structure for debug endpoints
type DebugResponse struct {
	Caches map[string]DebugCache `json:"caches"`
}

// DebugCache represents one cache's statistics in the debug response
type DebugCache struct {
	Size      int     `json:"size"`
	MaxSize   int     `json:"maxSize"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	Resets    int64   `json:"resets"`
	HitRate   float64 `json:"hitRate"`
}

// DebugHandler returns an HTTP handler that reports the size, capacity, and
// statistics of every cache registered with this registry
func (r *Registry) DebugHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := DebugResponse{Caches: make(map[string]DebugCache)}

		r.mu.RLock()
		for name, cache := range r.caches {
			info := cache.Info()
			stats := cache.Stats()
			response.Caches[name] = DebugCache{
				Size:      info.Size,
				MaxSize:   info.MaxSize,
				Hits:      stats.Hits(),
				Misses:    stats.Misses(),
				Evictions: stats.Evictions(),
				Resets:    stats.Resets(),
				HitRate:   stats.HitRate(),
			}
		}
		r.mu.RUnlock()

		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
		}
	})
}

// NewDebugServer creates an HTTP server exposing the registry's debug
// snapshot on every GET path
func (r *Registry) NewDebugServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/", r.DebugHandler())

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
