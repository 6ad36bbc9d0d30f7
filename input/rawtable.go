package input

// RawTableSize is the size of the platform raw-code space
const RawTableSize = 256

// MouseButtons is the number of pointer buttons folded into the key space
const MouseButtons = 5

// Raw codes for the terminal platform. Codes 0-127 are the ASCII bytes a
// terminal sends directly; codes 128+ are assigned here for keys that arrive
// as escape sequences. Platform adapters translate native events to these.
const (
	RawUp          = 128
	RawDown        = 129
	RawRight       = 130
	RawLeft        = 131
	RawHome        = 132
	RawEnd         = 133
	RawPageUp      = 134
	RawPageDown    = 135
	RawInsert      = 136
	RawDelete      = 137
	RawF1          = 138 // F2..F12 follow contiguously
	RawBacktab     = 150
	RawShift       = 151
	RawControl     = 152
	RawAlt         = 153
	RawMeta        = 154
	RawCapsLock    = 155
	RawNumLock     = 156
	RawScrollLock  = 157
	RawPause       = 158
	RawPrintScreen = 159
	RawMenu        = 160
	RawAltA        = 161 // alt-b..alt-z follow contiguously
	RawMetaUp      = 190
	RawMetaDown    = 191
	RawMetaLeft    = 192
	RawMetaRight   = 193
	RawMouse1      = 240 // mouse 2..5 follow contiguously
)

// rawLabels maps raw codes to their platform labels. Special keys carry
// angle-bracket decoration; chorded codes carry modifier prefixes so they
// collapse onto their base key after normalization (Ctrl+W, Shift+W and W
// all drive canonical "w"). Absent slots resolve to the unknown sentinel.
var rawLabels = map[int]string{
	// Control bytes. Backspace, tab and enter claim their bytes; the rest
	// are control chords.
	0:  "<control-space>",
	1:  "<control-a>",
	2:  "<control-b>",
	3:  "<control-c>",
	4:  "<control-d>",
	5:  "<control-e>",
	6:  "<control-f>",
	7:  "<control-g>",
	8:  "<backspace>",
	9:  "<tab>",
	10: "<control-j>",
	11: "<control-k>",
	12: "<control-l>",
	13: "<enter>",
	14: "<control-n>",
	15: "<control-o>",
	16: "<control-p>",
	17: "<control-q>",
	18: "<control-r>",
	19: "<control-s>",
	20: "<control-t>",
	21: "<control-u>",
	22: "<control-v>",
	23: "<control-w>",
	24: "<control-x>",
	25: "<control-y>",
	26: "<control-z>",
	27: "<escape>",
	28: "<control-\\>",
	29: "<control-]>",
	30: "<control-6>",
	31: "<control-/>",

	32: "<space>",

	// Shifted punctuation collapses onto the unshifted key, mirroring how
	// physical key codes ignore the shift plane.
	33: "<shift-1>",  // !
	34: "<shift-'>",  // "
	35: "<shift-3>",  // #
	36: "<shift-4>",  // $
	37: "<shift-5>",  // %
	38: "<shift-7>",  // &
	39: "'",
	40: "<shift-9>", // (
	41: "<shift-0>", // )
	42: "<shift-8>", // *
	43: "<shift-=>", // +
	44: ",",
	45: "-",
	46: ".",
	47: "/",

	48: "0",
	49: "1",
	50: "2",
	51: "3",
	52: "4",
	53: "5",
	54: "6",
	55: "7",
	56: "8",
	57: "9",

	58: "<shift-;>", // :
	59: ";",
	60: "<shift-,>", // <
	61: "=",
	62: "<shift-.>", // >
	63: "<shift-/>", // ?
	64: "<shift-2>", // @

	65: "<shift-a>",
	66: "<shift-b>",
	67: "<shift-c>",
	68: "<shift-d>",
	69: "<shift-e>",
	70: "<shift-f>",
	71: "<shift-g>",
	72: "<shift-h>",
	73: "<shift-i>",
	74: "<shift-j>",
	75: "<shift-k>",
	76: "<shift-l>",
	77: "<shift-m>",
	78: "<shift-n>",
	79: "<shift-o>",
	80: "<shift-p>",
	81: "<shift-q>",
	82: "<shift-r>",
	83: "<shift-s>",
	84: "<shift-t>",
	85: "<shift-u>",
	86: "<shift-v>",
	87: "<shift-w>",
	88: "<shift-x>",
	89: "<shift-y>",
	90: "<shift-z>",

	91: "[",
	92: "\\",
	93: "]",
	94: "<shift-6>", // ^
	95: "<shift-->", // _
	96: "`",

	97:  "a",
	98:  "b",
	99:  "c",
	100: "d",
	101: "e",
	102: "f",
	103: "g",
	104: "h",
	105: "i",
	106: "j",
	107: "k",
	108: "l",
	109: "m",
	110: "n",
	111: "o",
	112: "p",
	113: "q",
	114: "r",
	115: "s",
	116: "t",
	117: "u",
	118: "v",
	119: "w",
	120: "x",
	121: "y",
	122: "z",

	123: "<shift-[>",  // {
	124: "<shift-\\>", // |
	125: "<shift-]>",  // }
	126: "<shift-`>",  // ~
	127: "<backspace>",

	// Escape-sequence keys
	RawUp:          "<up>",
	RawDown:        "<down>",
	RawRight:       "<right>",
	RawLeft:        "<left>",
	RawHome:        "<home>",
	RawEnd:         "<end>",
	RawPageUp:      "<page up>",
	RawPageDown:    "<page down>",
	RawInsert:      "<insert>",
	RawDelete:      "<delete>",
	RawF1:          "<f1>",
	RawF1 + 1:      "<f2>",
	RawF1 + 2:      "<f3>",
	RawF1 + 3:      "<f4>",
	RawF1 + 4:      "<f5>",
	RawF1 + 5:      "<f6>",
	RawF1 + 6:      "<f7>",
	RawF1 + 7:      "<f8>",
	RawF1 + 8:      "<f9>",
	RawF1 + 9:      "<f10>",
	RawF1 + 10:     "<f11>",
	RawF1 + 11:     "<f12>",
	RawBacktab:     "<shift-tab>",
	RawShift:       "<shift>",
	RawControl:     "<control>",
	RawAlt:         "<alt>",
	RawMeta:        "<meta>",
	RawCapsLock:    "<caps lock>",
	RawNumLock:     "<num lock>",
	RawScrollLock:  "<scroll lock>",
	RawPause:       "<pause>",
	RawPrintScreen: "<print screen>",
	RawMenu:        "<menu>",

	// Alt chords (ESC-prefixed letters)
	RawAltA:      "<alt-a>",
	RawAltA + 1:  "<alt-b>",
	RawAltA + 2:  "<alt-c>",
	RawAltA + 3:  "<alt-d>",
	RawAltA + 4:  "<alt-e>",
	RawAltA + 5:  "<alt-f>",
	RawAltA + 6:  "<alt-g>",
	RawAltA + 7:  "<alt-h>",
	RawAltA + 8:  "<alt-i>",
	RawAltA + 9:  "<alt-j>",
	RawAltA + 10: "<alt-k>",
	RawAltA + 11: "<alt-l>",
	RawAltA + 12: "<alt-m>",
	RawAltA + 13: "<alt-n>",
	RawAltA + 14: "<alt-o>",
	RawAltA + 15: "<alt-p>",
	RawAltA + 16: "<alt-q>",
	RawAltA + 17: "<alt-r>",
	RawAltA + 18: "<alt-s>",
	RawAltA + 19: "<alt-t>",
	RawAltA + 20: "<alt-u>",
	RawAltA + 21: "<alt-v>",
	RawAltA + 22: "<alt-w>",
	RawAltA + 23: "<alt-x>",
	RawAltA + 24: "<alt-y>",
	RawAltA + 25: "<alt-z>",

	RawMetaUp:    "<meta-up>",
	RawMetaDown:  "<meta-down>",
	RawMetaLeft:  "<meta-left>",
	RawMetaRight: "<meta-right>",

	// Pointer buttons share the canonical key space
	RawMouse1:     "<mouse 1>",
	RawMouse1 + 1: "<mouse 2>",
	RawMouse1 + 2: "<mouse 3>",
	RawMouse1 + 3: "<mouse 4>",
	RawMouse1 + 4: "<mouse 5>",
}

// DefaultRawTable returns the stock 256-slot label table for the terminal
// platform. The result is a fresh copy; callers may edit it before building
// a KeySpace from it.
func DefaultRawTable() []string {
	table := make([]string, RawTableSize)
	for code, label := range rawLabels {
		table[code] = label
	}
	return table
}
