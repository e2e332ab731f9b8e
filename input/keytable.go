package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathrunner/easing"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]Intent

	// Printable bindings
	Runes map[rune]Intent

	// PlayKey triggers playback from any mode; it is not an intent but a per-frame flag
	PlayKey rune
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyUp:     {Type: IntentPan, DY: -1},
			tcell.KeyDown:   {Type: IntentPan, DY: 1},
			tcell.KeyLeft:   {Type: IntentPan, DX: -1},
			tcell.KeyRight:  {Type: IntentPan, DX: 1},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			's': {Type: IntentSpawn},
			'e': {Type: IntentEdit},
			'p': {Type: IntentPlay},
			'r': {Type: IntentReset},
			'm': {Type: IntentMute},
			'c': {Type: IntentRecenter},
			'1': {Type: IntentEasing, Preset: easing.Linear},
			'2': {Type: IntentEasing, Preset: easing.EaseIn},
			'3': {Type: IntentEasing, Preset: easing.EaseOut},
		},
		PlayKey: ' ',
	}
}
