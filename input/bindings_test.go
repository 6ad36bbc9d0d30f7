package input

import (
	"slices"
	"testing"
)

func testBuffer(down ...int) Buffer {
	return func(index int) bool {
		return slices.Contains(down, index)
	}
}

func TestBindingsResolveAliases(t *testing.T) {
	ks := NewKeySpace(DefaultRawTable())
	b := NewBindings(ks)

	b.Bind("jump", "space", "w")

	wIdx := ks.NameIndex("w")
	spaceIdx := ks.NameIndex("space")

	// Either alias satisfies the virtual name
	if !b.Resolve("jump", testBuffer(wIdx)) {
		t.Error(`Resolve("jump") = false with "w" down, want true`)
	}
	if !b.Resolve("jump", testBuffer(spaceIdx)) {
		t.Error(`Resolve("jump") = false with "space" down, want true`)
	}
	if b.Resolve("jump", testBuffer()) {
		t.Error(`Resolve("jump") = true with nothing down, want false`)
	}
}

func TestBindingsUnbindFallsBackToDirect(t *testing.T) {
	ks := NewKeySpace(DefaultRawTable())
	b := NewBindings(ks)

	b.Bind("jump", "space", "w")
	b.Unbind("jump")

	// "jump" is not a canonical key, so direct resolution is false even with
	// every key down
	all := func(int) bool { return true }
	if b.Resolve("jump", all) {
		t.Error(`Resolve("jump") = true after Unbind, want false`)
	}

	// Unbinding an absent name is a no-op
	b.Unbind("jump")
}

func TestBindingsDirectCanonicalResolution(t *testing.T) {
	ks := NewKeySpace(DefaultRawTable())
	b := NewBindings(ks)

	wIdx := ks.NameIndex("w")
	if !b.Resolve("w", testBuffer(wIdx)) {
		t.Error(`unbound canonical "w" did not resolve directly`)
	}
	if b.Resolve("no-such-key", func(int) bool { return true }) {
		t.Error("non-canonical unbound name resolved true")
	}
}

func TestBindingsDropUnresolvable(t *testing.T) {
	ks := NewKeySpace(DefaultRawTable())
	b := NewBindings(ks)

	b.Bind("fire", "bogus", "a")

	bound := b.Bound("fire")
	if len(bound) != 1 || bound[0] != "a" {
		t.Errorf(`Bound("fire") = %v, want ["a"]`, bound)
	}
}

func TestBindingsAllUnresolvableStoresNothing(t *testing.T) {
	ks := NewKeySpace(DefaultRawTable())
	b := NewBindings(ks)

	b.Bind("fire", "bogus", "also-bogus")

	if b.Bound("fire") != nil {
		t.Errorf(`Bound("fire") = %v, want nil`, b.Bound("fire"))
	}
	if len(b.Virtuals()) != 0 {
		t.Errorf("Virtuals() = %v, want empty", b.Virtuals())
	}
}

func TestBindingsIdempotentAndMerging(t *testing.T) {
	ks := NewKeySpace(DefaultRawTable())
	b := NewBindings(ks)

	b.Bind("jump", "space")
	b.Bind("jump", "space")
	if got := b.Bound("jump"); len(got) != 1 {
		t.Errorf(`Bound("jump") after duplicate bind = %v, want one entry`, got)
	}

	// A later bind appends to the existing list
	b.Bind("jump", "w")
	got := b.Bound("jump")
	if len(got) != 2 || !slices.Contains(got, "space") || !slices.Contains(got, "w") {
		t.Errorf(`Bound("jump") after merge = %v, want space and w`, got)
	}
}
