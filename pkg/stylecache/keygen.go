package stylecache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Props is the input configuration passed to a component's class-name
// function on each render. Values are JSON-like: primitives, nested maps,
// and slices, though any Go value is tolerated.
type Props map[string]any

// maxLiteralKeyLen bounds the length of keys stored verbatim; longer
// canonical serializations are hashed
const maxLiteralKeyLen = 96

// DefaultKeyFunc derives a canonical cache key from a props object.
//
// The serialization is independent of map insertion order: keys are sorted
// lexicographically at every nesting level, values carry a type tag
// (s:/i:/u:/f:/b:), slices keep element order, structs serialize exported
// fields in declaration order, and pointers and interfaces are dereferenced.
// Key equality therefore coincides with structural equality of the props.
//
// The function is total. Values that have no canonical serialization
// (functions, channels) degrade to a per-process identity token of the form
// <type>@0x<address>, and cyclic structures are cut with a "cycle" marker at
// the point of revisit. Two distinct such values can in principle share a
// token after address reuse; this is an accepted trade-off, not an error.
//
// Serializations longer than maxLiteralKeyLen are SHA-256 hashed to keep key
// sizes bounded.
func DefaultKeyFunc(props Props) string {
	if len(props) == 0 {
		return "no-props"
	}

	enc := &keyEncoder{seen: make(map[uintptr]struct{})}
	var b strings.Builder
	enc.encodeMap(&b, reflect.ValueOf(props))

	combined := b.String()
	if len(combined) <= maxLiteralKeyLen {
		return combined
	}

	hash := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(hash[:])
}

// SimpleKeyFunc derives keys from the top-level props only, using Go's
// default formatting for values. Faster than DefaultKeyFunc but collision
// prone for nested values; useful when props are known to be flat.
func SimpleKeyFunc(props Props) string {
	if len(props) == 0 {
		return "no-props"
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
	}
	return strings.Join(parts, "|")
}

// keyEncoder walks a props value recursively. seen tracks the addresses of
// maps, slices, and pointers on the current path so cycles terminate.
type keyEncoder struct {
	seen map[uintptr]struct{}
}

func (e *keyEncoder) encodeValue(b *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString("nil")
		return
	}

	switch v.Kind() {
	case reflect.String:
		b.WriteString("s:")
		b.WriteString(strconv.Quote(v.String()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString("i:")
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		b.WriteString("u:")
		b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		b.WriteString("f:")
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Bool:
		b.WriteString("b:")
		b.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Interface:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		e.encodeValue(b, v.Elem())
	case reflect.Pointer:
		e.encodePointer(b, v)
	case reflect.Map:
		e.encodeMap(b, v)
	case reflect.Slice, reflect.Array:
		e.encodeSlice(b, v)
	case reflect.Struct:
		e.encodeStruct(b, v)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		// No canonical serialization exists; fall back to a stable
		// per-process identity token.
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		fmt.Fprintf(b, "%s@0x%x", v.Type(), v.Pointer())
	default:
		fmt.Fprintf(b, "%s:%v", v.Type(), v)
	}
}

func (e *keyEncoder) encodePointer(b *strings.Builder, v reflect.Value) {
	if v.IsNil() {
		b.WriteString("nil")
		return
	}
	if e.enter(v) {
		b.WriteString("cycle")
		return
	}
	defer e.leave(v)

	b.WriteString("ptr:")
	e.encodeValue(b, v.Elem())
}

func (e *keyEncoder) encodeMap(b *strings.Builder, v reflect.Value) {
	if v.IsNil() {
		b.WriteString("nil")
		return
	}
	if e.enter(v) {
		b.WriteString("cycle")
		return
	}
	defer e.leave(v)

	e.encodeMapValue(b, v)
}

// encodeMapValue serializes map pairs sorted by their encoded key, so two
// maps with identical entries in different insertion order serialize
// identically
func (e *keyEncoder) encodeMapValue(b *strings.Builder, v reflect.Value) {
	pairs := make([]string, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var pb strings.Builder
		e.encodeValue(&pb, iter.Key())
		pb.WriteByte('=')
		e.encodeValue(&pb, iter.Value())
		pairs = append(pairs, pb.String())
	}
	sort.Strings(pairs)

	b.WriteByte('{')
	b.WriteString(strings.Join(pairs, ","))
	b.WriteByte('}')
}

func (e *keyEncoder) encodeSlice(b *strings.Builder, v reflect.Value) {
	if v.Kind() == reflect.Slice {
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		if e.enter(v) {
			b.WriteString("cycle")
			return
		}
		defer e.leave(v)
	}

	b.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		e.encodeValue(b, v.Index(i))
	}
	b.WriteByte(']')
}

func (e *keyEncoder) encodeStruct(b *strings.Builder, v reflect.Value) {
	t := v.Type()

	name := t.Name()
	if name == "" {
		name = "struct"
	}
	b.WriteString(name)
	b.WriteByte('{')

	wrote := false
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if wrote {
			b.WriteByte(',')
		}
		b.WriteString(field.Name)
		b.WriteByte(':')
		e.encodeValue(b, v.Field(i))
		wrote = true
	}
	b.WriteByte('}')
}

// enter records a reference value on the current path, reporting whether it
// was already there
func (e *keyEncoder) enter(v reflect.Value) bool {
	p := v.Pointer()
	if _, ok := e.seen[p]; ok {
		return true
	}
	e.seen[p] = struct{}{}
	return false
}

func (e *keyEncoder) leave(v reflect.Value) {
	delete(e.seen, v.Pointer())
}
