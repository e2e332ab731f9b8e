package modes

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/pathrunner/curve"
	"github.com/lixenwraith/pathrunner/easing"
	"github.com/lixenwraith/pathrunner/motion"
	"github.com/lixenwraith/pathrunner/path"
	"github.com/lixenwraith/pathrunner/vmath"
)

// Controller is the edit controller: mode machine, pointer placement and dragging
// It owns the path, the easing profile and the traverser; all calls happen on one goroutine
type Controller struct {
	mode Mode

	model     *path.Model
	profile   *easing.Profile
	traverser *motion.Traverser
	raycaster Raycaster

	// Drag state, never read by rendering
	dragging bool
	selected int

	resolution int
	log        zerolog.Logger
}

// NewController wires a controller in Spawn mode
func NewController(model *path.Model, profile *easing.Profile, opts motion.Options, raycaster Raycaster, log zerolog.Logger) *Controller {
	tr := motion.New(model, profile, opts)
	c := &Controller{
		mode:       ModeSpawn,
		model:      model,
		profile:    profile,
		traverser:  tr,
		raycaster:  raycaster,
		selected:   -1,
		resolution: tr.Options().Resolution,
		log:        log.With().Str("component", "controller").Logger(),
	}
	tr.Subscribe(motion.ListenerFunc(c.logTraversal))
	return c
}

func (c *Controller) logTraversal(ev motion.Event) {
	switch ev.Type {
	case motion.EventTableBuilt:
		c.log.Debug().Int("segment", ev.Segment).Float64("length", ev.Length).Msg("arc-length table built")
	case motion.EventSegmentAdvanced:
		c.log.Info().Int("segment", ev.Segment).Int("completed", ev.Completed).Msg("segment advanced")
	case motion.EventPlaybackFinished:
		c.log.Info().Int("completed", ev.Completed).Msg("playback finished")
	}
}

// setMode switches mode and abandons any drag in progress
func (c *Controller) setMode(m Mode) {
	if c.dragging {
		c.log.Debug().Int("point", c.selected).Msg("drag abandoned by mode change")
	}
	c.endDrag()
	if c.mode != m {
		c.log.Info().Stringer("from", c.mode).Stringer("to", m).Msg("mode change")
	}
	c.mode = m
}

// ToSpawn enters Spawn mode
func (c *Controller) ToSpawn() {
	c.setMode(ModeSpawn)
}

// ToEdit enters Edit mode
func (c *Controller) ToEdit() {
	c.setMode(ModeEdit)
}

// ToPlay enters Play mode and starts traversal when the path has a segment
func (c *Controller) ToPlay() {
	c.setMode(ModePlay)
	c.traverser.Start()
}

// ToReset clears the path and returns to Spawn with traversal rewound
func (c *Controller) ToReset() {
	c.setMode(ModeSpawn)
	c.model.Clear()
	c.traverser.Reset()
	c.log.Info().Msg("path reset")
}

// StartPlayback is the global play trigger, effective only on a playable path
// Safe to call every frame: the table is rebuilt only when stale
func (c *Controller) StartPlayback() {
	if !c.model.Playable() {
		return
	}
	if c.mode != ModePlay {
		c.setMode(ModePlay)
	}
	c.traverser.Start()
}

// SetEasing applies an easing preset to the profile
func (c *Controller) SetEasing(p easing.Preset) {
	c.profile.Apply(p)
	c.log.Info().Stringer("preset", p).Msg("easing preset")
}

// Tick processes one frame of input and advances playback
func (c *Controller) Tick(in FrameInput) error {
	if !c.raycaster.IsPointerOverUI(in.PointerX, in.PointerY) {
		c.handlePointer(in)
	}
	// A release ends the drag wherever the pointer is
	if in.PrimaryUp {
		c.releaseDrag()
	}

	if in.PlayKey {
		c.StartPlayback()
	}

	if !c.dragging && c.mode == ModePlay {
		if err := c.traverser.Tick(in.DeltaTime); err != nil {
			c.log.Error().Err(err).Msg("traversal aborted")
			return err
		}
	}
	return nil
}

func (c *Controller) handlePointer(in FrameInput) {
	switch c.mode {
	case ModeSpawn:
		if !in.PrimaryDown {
			return
		}
		hit, ok := c.raycaster.RayCastToGroundPlane(in.PointerX, in.PointerY)
		if !ok || hit.Object != path.NoObject {
			return
		}
		idx := c.model.AddAnchor(hit.Position)
		c.log.Info().Int("index", idx).Float64("x", hit.Position.X).Float64("z", hit.Position.Z).Msg("anchor placed")

	case ModeEdit:
		if in.PrimaryDown {
			if hit, ok := c.raycaster.RayCastToGroundPlane(in.PointerX, in.PointerY); ok {
				if idx, found := c.model.IndexOfObject(hit.Object); found {
					c.dragging = true
					c.selected = idx
					c.log.Debug().Int("point", idx).Stringer("role", c.model.Point(idx).Role).Msg("drag start")
				}
			}
		}
		c.drag(in)

	case ModePlay:
		// Pointer input does not edit during playback
	}
}

func (c *Controller) drag(in FrameInput) {
	if c.dragging && in.PrimaryHeld {
		if hit, ok := c.raycaster.RayCastToGroundPlane(in.PointerX, in.PointerY); ok {
			c.model.Move(c.selected, hit.Position)
		}
	}
}

func (c *Controller) releaseDrag() {
	if c.dragging {
		c.log.Debug().Int("point", c.selected).Msg("drag end")
	}
	c.endDrag()
}

func (c *Controller) endDrag() {
	c.dragging = false
	c.selected = -1
}

// Mode returns the current mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Dragging reports whether a point is being dragged
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Model returns the path
func (c *Controller) Model() *path.Model {
	return c.model
}

// Traverser returns the motion engine
func (c *Controller) Traverser() *motion.Traverser {
	return c.traverser
}

// Easing returns the easing profile
func (c *Controller) Easing() *easing.Profile {
	return c.profile
}

// Snapshot is the read-only view handed to renderers
type Snapshot struct {
	Mode    Mode
	Easing  easing.Preset
	Points  []path.Point
	Samples [][]vmath.Vec3F

	// Active holds the active segment's four points when HasActive is set
	Active    [4]vmath.Vec3F
	HasActive bool

	Runner        motion.Transform
	Running       bool
	Progress      float64
	ActiveSegment int
	SegmentCount  int
}

// Snapshot captures the state needed to draw a frame
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Mode:          c.mode,
		Easing:        c.profile.Preset(),
		Points:        c.model.Points(),
		Runner:        c.traverser.Transform(),
		Running:       c.traverser.Running(),
		Progress:      c.traverser.Progress(),
		ActiveSegment: c.traverser.ActiveSegment(),
		SegmentCount:  c.model.SegmentCount(),
	}

	segs := c.model.Segments()
	s.Samples = make([][]vmath.Vec3F, len(segs))
	for i, seg := range segs {
		s.Samples[i] = curve.Sample(seg, c.resolution)
	}
	if active := s.ActiveSegment; active < len(segs) {
		s.Active = segs[active].Points()
		s.HasActive = true
	}
	return s
}
