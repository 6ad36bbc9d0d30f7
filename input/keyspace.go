package input

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// NotFound is the sentinel index for names and codes outside the key space
// Lookups never fail with an error; callers degrade on NotFound
const NotFound = -1

// UnknownKey is the canonical name raw codes without a label resolve to
// It is always a member of the canonical set
const UnknownKey = "unknown"

// modifierPrefixes are stripped from raw labels so chorded codes collapse
// onto their base key
var modifierPrefixes = [...]string{"alt-", "control-", "shift-", "meta-"}

// KeySpace is the canonical key registry: the deduplicated, sorted name space
// derived from a raw label table, plus the raw code → canonical index map.
// Immutable after construction; one instance serves any number of shells.
type KeySpace struct {
	names       []string
	codeToIndex []int
	unknownIdx  int
	mouseIdx    [MouseButtons]int
}

var (
	defaultSpace *KeySpace
	defaultOnce  sync.Once
)

// Default returns the process-wide KeySpace built from the stock raw table
// Built once on first use
func Default() *KeySpace {
	defaultOnce.Do(func() {
		defaultSpace = NewKeySpace(DefaultRawTable())
	})
	return defaultSpace
}

// NewKeySpace builds a canonical key space from a raw label table
// Empty labels resolve to the unknown sentinel
func NewKeySpace(table []string) *KeySpace {
	seen := make(map[string]struct{}, len(table))
	seen[UnknownKey] = struct{}{}

	normalized := make([]string, len(table))
	for code, label := range table {
		name := NormalizeLabel(label)
		normalized[code] = name
		if name != "" {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	ks := &KeySpace{
		names:       names,
		codeToIndex: make([]int, len(table)),
	}
	ks.unknownIdx = ks.NameIndex(UnknownKey)

	for code, name := range normalized {
		if name == "" {
			ks.codeToIndex[code] = ks.unknownIdx
			continue
		}
		ks.codeToIndex[code] = ks.NameIndex(name)
	}

	for b := range ks.mouseIdx {
		ks.mouseIdx[b] = ks.NameIndex(fmt.Sprintf("mouse-%d", b+1))
	}

	return ks
}

// NormalizeLabel converts a raw platform label to its canonical name:
// enclosing angle brackets are dropped, modifier prefixes (alt-, control-,
// shift-, meta-) are stripped, and internal whitespace becomes hyphens.
// Returns "" for labels that normalize to nothing.
func NormalizeLabel(label string) string {
	s := label
	if len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>' {
		s = s[1 : len(s)-1]
	}

	for stripped := true; stripped; {
		stripped = false
		for _, p := range modifierPrefixes {
			if rest, ok := strings.CutPrefix(s, p); ok && rest != "" {
				s = rest
				stripped = true
			}
		}
	}

	if fields := strings.Fields(s); len(fields) > 1 {
		s = strings.Join(fields, "-")
	}

	return strings.TrimSpace(s)
}

// NameIndex returns the canonical index for a name, or NotFound
// Binary search over the sorted name space
func (k *KeySpace) NameIndex(name string) int {
	i := sort.SearchStrings(k.names, name)
	if i < len(k.names) && k.names[i] == name {
		return i
	}
	return NotFound
}

// CodeIndex returns the canonical index for a raw code
// In-range codes without a label resolve to the unknown sentinel;
// out-of-range codes return NotFound
func (k *KeySpace) CodeIndex(code int) int {
	if code < 0 || code >= len(k.codeToIndex) {
		return NotFound
	}
	return k.codeToIndex[code]
}

// MouseIndex returns the canonical index for pointer button b (1-based)
// Returns NotFound for buttons outside 1..MouseButtons
func (k *KeySpace) MouseIndex(b int) int {
	if b < 1 || b > MouseButtons {
		return NotFound
	}
	return k.mouseIdx[b-1]
}

// UnknownIndex returns the canonical index of the unknown sentinel
func (k *KeySpace) UnknownIndex() int {
	return k.unknownIdx
}

// Len returns the number of canonical names
func (k *KeySpace) Len() int {
	return len(k.names)
}

// Name returns the canonical name at index, or "" if out of range
func (k *KeySpace) Name(index int) string {
	if index < 0 || index >= len(k.names) {
		return ""
	}
	return k.names[index]
}

// Names returns a copy of the sorted canonical name list
func (k *KeySpace) Names() []string {
	out := make([]string, len(k.names))
	copy(out, k.names)
	return out
}
