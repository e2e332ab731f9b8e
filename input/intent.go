package input

import "github.com/lixenwraith/pathrunner/easing"

// IntentType discriminates editor commands decoded from keys
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C, Ctrl+Q
	IntentResize // Terminal resize event
	IntentMute   // m

	// Mode buttons
	IntentSpawn // s
	IntentEdit  // e
	IntentPlay  // p
	IntentReset // r

	// Easing dropdown
	IntentEasing // 1, 2, 3

	// View
	IntentPan      // arrows
	IntentRecenter // c
)

// Intent is a decoded command
type Intent struct {
	Type   IntentType
	Preset easing.Preset

	// Pan direction in cells
	DX, DY int
}
