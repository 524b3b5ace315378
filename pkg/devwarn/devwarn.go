// Package devwarn surfaces programmer-facing prop diagnostics during
// development, deduplicated so each distinct warning is emitted at most
// once per process lifetime. All output is suppressed outside development
// mode.
package devwarn

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// developmentMode gates all warning output. It is re-read on every call so
// tests can toggle it at runtime.
var developmentMode atomic.Bool

func init() {
	developmentMode.Store(envIsDevelopment())
}

func envIsDevelopment() bool {
	for _, name := range []string{"APP_ENV", "GO_ENV"} {
		switch os.Getenv(name) {
		case "development", "dev":
			return true
		}
	}
	return false
}

// SetDevelopmentMode enables or disables warning output process-wide
func SetDevelopmentMode(on bool) {
	developmentMode.Store(on)
}

// DevelopmentMode reports whether warning output is enabled
func DevelopmentMode() bool {
	return developmentMode.Load()
}

// Warner emits deduplicated prop diagnostics. Each instance owns its dedup
// state; the package-level default instance lives for the process lifetime,
// and New constructs fresh instances so tests can verify dedup behavior
// without cross-test pollution.
type Warner struct {
	mu   sync.Mutex
	seen map[string]struct{}
	out  io.Writer
	mode func() bool
}

// Option configures a Warner
type Option func(*Warner)

// WithOutput redirects warning output, which defaults to os.Stderr
func WithOutput(w io.Writer) Option {
	return func(warner *Warner) {
		warner.out = w
	}
}

// WithModeFunc overrides how the development-mode gate is evaluated.
// The function is called on every warning.
func WithModeFunc(fn func() bool) Option {
	return func(warner *Warner) {
		warner.mode = fn
	}
}

// New creates a Warner with independent dedup state
func New(opts ...Option) *Warner {
	w := &Warner{
		seen: make(map[string]struct{}),
		out:  os.Stderr,
		mode: DevelopmentMode,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var defaultWarner = New()

// InvalidProp warns that a component received a prop value outside its
// accepted set. When validValues are supplied they are listed in the
// message. Emitted at most once per (component, prop) pair.
func (w *Warner) InvalidProp(component, prop string, value any, validValues ...string) {
	msg := fmt.Sprintf("Invalid prop %q with value %q.", prop, fmt.Sprint(value))
	if len(validValues) > 0 {
		msg += " Valid values: " + strings.Join(validValues, ", ")
	}
	w.emit("invalid|"+component+"|"+prop, component, msg)
}

// DeprecatedProp warns that a prop has been replaced. Emitted at most once
// per (component, oldProp) pair.
func (w *Warner) DeprecatedProp(component, oldProp, newProp string) {
	msg := fmt.Sprintf("Prop %q is deprecated. Use %q instead.", oldProp, newProp)
	w.emit("deprecated|"+component+"|"+oldProp, component, msg)
}

// ConflictingProps warns that mutually exclusive props were supplied
// together. The prop list is sorted so the message and dedup key are
// deterministic regardless of caller order. Emitted at most once per
// (component, prop set).
func (w *Warner) ConflictingProps(component string, propNames []string, explanation string) {
	sorted := make([]string, len(propNames))
	copy(sorted, propNames)
	sort.Strings(sorted)

	list := strings.Join(sorted, ", ")
	msg := fmt.Sprintf("Conflicting props [%s]: %s", list, explanation)
	w.emit("conflict|"+component+"|"+strings.Join(sorted, "+"), component, msg)
}

// emit writes a diagnostic unless development mode is off or the composite
// key was already seen by this Warner
func (w *Warner) emit(key, component, msg string) {
	if w.mode == nil || !w.mode() {
		return
	}

	w.mu.Lock()
	if _, dup := w.seen[key]; dup {
		w.mu.Unlock()
		return
	}
	w.seen[key] = struct{}{}
	w.mu.Unlock()

	fmt.Fprintf(w.out, "[%s] %s\n", component, msg)
}

// Package-level wrappers over the default instance.

// InvalidProp warns via the default Warner
func InvalidProp(component, prop string, value any, validValues ...string) {
	defaultWarner.InvalidProp(component, prop, value, validValues...)
}

// DeprecatedProp warns via the default Warner
func DeprecatedProp(component, oldProp, newProp string) {
	defaultWarner.DeprecatedProp(component, oldProp, newProp)
}

// ConflictingProps warns via the default Warner
func ConflictingProps(component string, propNames []string, explanation string) {
	defaultWarner.ConflictingProps(component, propNames, explanation)
}
