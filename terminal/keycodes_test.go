package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gameshell/input"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		mod      tcell.ModMask
		expected int
	}{
		{"lowercase rune", tcell.KeyRune, 'w', tcell.ModNone, 'w'},
		{"uppercase rune", tcell.KeyRune, 'W', tcell.ModShift, 'W'},
		{"digit", tcell.KeyRune, '7', tcell.ModNone, '7'},
		{"space", tcell.KeyRune, ' ', tcell.ModNone, ' '},
		{"punctuation", tcell.KeyRune, ';', tcell.ModNone, ';'},
		{"alt chord lower", tcell.KeyRune, 'c', tcell.ModAlt, input.RawAltA + 2},
		{"alt chord upper", tcell.KeyRune, 'C', tcell.ModAlt, input.RawAltA + 2},
		{"non-ascii rune", tcell.KeyRune, 'é', tcell.ModNone, -1},
		{"ctrl-c byte", tcell.KeyCtrlC, 0, tcell.ModCtrl, 3},
		{"tab", tcell.KeyTab, 0, tcell.ModNone, 9},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, 13},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, 27},
		{"arrow up", tcell.KeyUp, 0, tcell.ModNone, input.RawUp},
		{"arrow left", tcell.KeyLeft, 0, tcell.ModNone, input.RawLeft},
		{"meta arrow", tcell.KeyUp, 0, tcell.ModMeta, input.RawMetaUp},
		{"page up", tcell.KeyPgUp, 0, tcell.ModNone, input.RawPageUp},
		{"delete", tcell.KeyDelete, 0, tcell.ModNone, input.RawDelete},
		{"backtab", tcell.KeyBacktab, 0, tcell.ModNone, input.RawBacktab},
		{"f1", tcell.KeyF1, 0, tcell.ModNone, input.RawF1},
		{"f12", tcell.KeyF12, 0, tcell.ModNone, input.RawF1 + 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tt.mod)
			if got := TranslateKey(ev); got != tt.expected {
				t.Errorf("TranslateKey(%s) = %d, want %d", tt.name, got, tt.expected)
			}
		})
	}
}

func TestTranslateKeyRoundTripsThroughKeySpace(t *testing.T) {
	ks := input.NewKeySpace(input.DefaultRawTable())

	// Ctrl+W, Shift+W and plain w must land on the same canonical key
	plain := TranslateKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	shifted := TranslateKey(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift))
	ctrl := TranslateKey(tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl))

	want := ks.NameIndex("w")
	for _, code := range []int{plain, shifted, ctrl} {
		if got := ks.CodeIndex(code); got != want {
			t.Errorf("CodeIndex(%d) = %d, want canonical w index %d", code, got, want)
		}
	}
}

func TestTranslateButtons(t *testing.T) {
	tests := []struct {
		name     string
		buttons  tcell.ButtonMask
		expected int
	}{
		{"none", tcell.ButtonNone, 0},
		{"button1", tcell.Button1, 0b1},
		{"button3", tcell.Button3, 0b100},
		{"chord", tcell.Button1 | tcell.Button2, 0b11},
		{"wheel ignored", tcell.WheelUp | tcell.WheelDown, 0},
		{"wheel with button", tcell.Button1 | tcell.WheelUp, 0b1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateButtons(tt.buttons); got != tt.expected {
				t.Errorf("TranslateButtons(%v) = %b, want %b", tt.buttons, got, tt.expected)
			}
		})
	}
}
