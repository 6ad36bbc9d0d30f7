package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gameshell/input"
)

// TranslateKey converts a tcell key event to a raw code in the stock table,
// or -1 when the event has no slot
//
// tcell key values below 256 are the terminal byte itself (control chords,
// printable runes arrive as KeyRune); special keys arrive as escape-sequence
// constants and map onto the assigned 128+ range.
func TranslateKey(ev *tcell.EventKey) int {
	key := ev.Key()

	if key == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModAlt != 0 {
			switch {
			case r >= 'a' && r <= 'z':
				return input.RawAltA + int(r-'a')
			case r >= 'A' && r <= 'Z':
				return input.RawAltA + int(r-'A')
			}
		}
		if r >= 0 && r < 128 {
			return int(r)
		}
		return -1
	}

	// Control plane: tcell.KeyCtrlA..KeyCtrlZ, tab, enter, escape, backspace
	// carry their byte value
	if key < 256 {
		return int(key)
	}

	if ev.Modifiers()&tcell.ModMeta != 0 {
		switch key {
		case tcell.KeyUp:
			return input.RawMetaUp
		case tcell.KeyDown:
			return input.RawMetaDown
		case tcell.KeyLeft:
			return input.RawMetaLeft
		case tcell.KeyRight:
			return input.RawMetaRight
		}
	}

	switch key {
	case tcell.KeyUp:
		return input.RawUp
	case tcell.KeyDown:
		return input.RawDown
	case tcell.KeyRight:
		return input.RawRight
	case tcell.KeyLeft:
		return input.RawLeft
	case tcell.KeyHome:
		return input.RawHome
	case tcell.KeyEnd:
		return input.RawEnd
	case tcell.KeyPgUp:
		return input.RawPageUp
	case tcell.KeyPgDn:
		return input.RawPageDown
	case tcell.KeyInsert:
		return input.RawInsert
	case tcell.KeyDelete:
		return input.RawDelete
	case tcell.KeyBacktab:
		return input.RawBacktab
	}

	if key >= tcell.KeyF1 && key <= tcell.KeyF12 {
		return input.RawF1 + int(key-tcell.KeyF1)
	}

	return -1
}

// buttonBits orders tcell buttons by pointer button number 1..5
var buttonBits = [input.MouseButtons]tcell.ButtonMask{
	tcell.Button1, tcell.Button2, tcell.Button3, tcell.Button4, tcell.Button5,
}

// TranslateButtons converts a tcell button mask to the shell's button mask
// (bit b-1 set = button b held). Wheel bits are discarded.
func TranslateButtons(b tcell.ButtonMask) int {
	mask := 0
	for i, bit := range buttonBits {
		if b&bit != 0 {
			mask |= 1 << i
		}
	}
	return mask
}
