package input

import (
	"slices"
	"sync"
)

// Buffer reads one slot of a key buffer; Resolve queries through it so the
// same lookup path serves current and previous buffers
type Buffer func(index int) bool

// Bindings maps application-level virtual key names to canonical indices.
// A virtual name bound to several physical keys is down when any of them is
// down. Owned by exactly one shell; never shared.
type Bindings struct {
	keys *KeySpace

	mu      sync.RWMutex
	virtual map[string][]int
}

// NewBindings creates an empty binding table over a key space
func NewBindings(keys *KeySpace) *Bindings {
	return &Bindings{
		keys:    keys,
		virtual: make(map[string][]int),
	}
}

// Bind merges physical key names into the binding for virtualName
// Names the key space cannot resolve are dropped silently; the merged list is
// deduplicated. If nothing resolves and no binding existed, none is stored.
// Rebinding the same pair is a no-op beyond the initial bind.
func (b *Bindings) Bind(virtualName string, physical ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	merged := b.virtual[virtualName]
	for _, name := range physical {
		idx := b.keys.NameIndex(name)
		if idx == NotFound {
			continue
		}
		if !slices.Contains(merged, idx) {
			merged = append(merged, idx)
		}
	}

	if len(merged) == 0 {
		return
	}
	b.virtual[virtualName] = merged
}

// Unbind removes the binding for virtualName; no-op if absent
func (b *Bindings) Unbind(virtualName string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.virtual, virtualName)
}

// Resolve reports whether name is set in the given buffer
// A bound virtual name is true when any of its physical keys is set;
// an unbound name falls back to direct canonical lookup, then false.
func (b *Bindings) Resolve(name string, buf Buffer) bool {
	b.mu.RLock()
	indices, bound := b.virtual[name]
	b.mu.RUnlock()

	if bound {
		for _, idx := range indices {
			if buf(idx) {
				return true
			}
		}
		return false
	}

	idx := b.keys.NameIndex(name)
	if idx == NotFound {
		return false
	}
	return buf(idx)
}

// Bound returns the canonical names bound to virtualName, nil if unbound
func (b *Bindings) Bound(virtualName string) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	indices, ok := b.virtual[virtualName]
	if !ok {
		return nil
	}
	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = b.keys.Name(idx)
	}
	return names
}

// Virtuals returns the bound virtual names in map order
func (b *Bindings) Virtuals() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, 0, len(b.virtual))
	for name := range b.virtual {
		out = append(out, name)
	}
	return out
}
