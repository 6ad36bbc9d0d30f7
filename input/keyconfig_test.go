package input

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseBindings(t *testing.T) {
	data := []byte(`
[bindings]
jump = ["space", "w"]
move-left = ["left", "a"]
`)

	bindings, err := ParseBindings(data)
	if err != nil {
		t.Fatalf("ParseBindings() error = %v", err)
	}

	if got := bindings["jump"]; !slices.Equal(got, []string{"space", "w"}) {
		t.Errorf(`bindings["jump"] = %v, want [space w]`, got)
	}
	if got := bindings["move-left"]; !slices.Equal(got, []string{"left", "a"}) {
		t.Errorf(`bindings["move-left"] = %v, want [left a]`, got)
	}
}

func TestParseBindingsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed toml", `[bindings` + "\n"},
		{"empty physical list", "[bindings]\njump = []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBindings([]byte(tt.data)); err == nil {
				t.Error("ParseBindings() error = nil, want error")
			}
		})
	}
}

func TestLoadBindingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	content := "[bindings]\nfire = [\"enter\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	bindings, err := LoadBindingsFile(path)
	if err != nil {
		t.Fatalf("LoadBindingsFile() error = %v", err)
	}
	if got := bindings["fire"]; !slices.Equal(got, []string{"enter"}) {
		t.Errorf(`bindings["fire"] = %v, want [enter]`, got)
	}

	if _, err := LoadBindingsFile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadBindingsFile(absent) error = nil, want error")
	}
}

func TestUnresolvedNames(t *testing.T) {
	ks := NewKeySpace(DefaultRawTable())

	bindings := map[string][]string{
		"jump": {"space", "warp-core"},
		"fire": {"enter", "zz-typo"},
	}

	got := UnresolvedNames(ks, bindings)
	want := []string{"warp-core", "zz-typo"}
	if !slices.Equal(got, want) {
		t.Errorf("UnresolvedNames() = %v, want %v", got, want)
	}

	if got := UnresolvedNames(ks, map[string][]string{"jump": {"space"}}); got != nil {
		t.Errorf("UnresolvedNames(all valid) = %v, want nil", got)
	}
}
