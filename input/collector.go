// Package input folds terminal events arriving between ticks into one frame of editor input.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathrunner/modes"
)

// Collector accumulates pointer and key state between ticks
// Button edges seen during a frame are latched until Frame is called
type Collector struct {
	keyTable *KeyTable

	pointerX, pointerY int
	held               bool

	down    bool
	up      bool
	playKey bool
}

// NewCollector creates a collector with the default key table
func NewCollector() *Collector {
	return &Collector{keyTable: DefaultKeyTable()}
}

// Process consumes one terminal event
// Commands are returned as intents; pointer and play-key state is latched for Frame
func (c *Collector) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return c.processKey(ev)
	case *tcell.EventMouse:
		c.processMouse(ev)
	}
	return nil
}

func (c *Collector) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == c.keyTable.PlayKey {
			c.playKey = true
			return nil
		}
		if intent, ok := c.keyTable.Runes[r]; ok {
			return &intent
		}
		return nil
	}
	if intent, ok := c.keyTable.SpecialKeys[ev.Key()]; ok {
		return &intent
	}
	return nil
}

func (c *Collector) processMouse(ev *tcell.EventMouse) {
	c.pointerX, c.pointerY = ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !c.held:
		c.down = true
	case !pressed && c.held:
		c.up = true
	}
	c.held = pressed
}

// Frame returns the input for one tick and clears latched edges
// A press and release inside one frame reports down, held and up together
func (c *Collector) Frame(dt time.Duration) modes.FrameInput {
	in := modes.FrameInput{
		PointerX:    c.pointerX,
		PointerY:    c.pointerY,
		PrimaryDown: c.down,
		PrimaryHeld: c.held || c.down,
		PrimaryUp:   c.up,
		PlayKey:     c.playKey,
		DeltaTime:   dt,
	}
	c.down = false
	c.up = false
	c.playKey = false
	return in
}
