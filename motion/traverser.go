// Package motion drives a runner along the active segment at arc-length-uniform speed.
package motion

import (
	"fmt"
	"time"

	"github.com/lixenwraith/pathrunner/constants"
	"github.com/lixenwraith/pathrunner/curve"
	"github.com/lixenwraith/pathrunner/easing"
	"github.com/lixenwraith/pathrunner/path"
	"github.com/lixenwraith/pathrunner/vmath"
)

// Options configures traversal
type Options struct {
	// Resolution is the arc-length table sampling density
	Resolution int
	// Duration is the time spent on each segment
	Duration time.Duration
}

// DefaultOptions returns the stock resolution and per-segment duration
func DefaultOptions() Options {
	return Options{
		Resolution: constants.DefaultCurveResolution,
		Duration:   constants.DefaultSegmentDuration,
	}
}

// Transform is the runner's pose
type Transform struct {
	Position vmath.Vec3F
	Forward  vmath.Vec3F
}

// Yaw returns the heading of Forward on the ground plane
func (t Transform) Yaw() float64 {
	return vmath.V3FYaw(t.Forward)
}

// Traverser owns the traversal state: active segment, progress and running flag
// Single-threaded; Tick is called once per frame
type Traverser struct {
	model   *path.Model
	profile *easing.Profile
	opts    Options

	segment  int
	progress float64
	running  bool

	table     curve.ArcLengthTable
	transform Transform

	listeners []Listener
}

// New creates an idle traverser on the first segment
func New(model *path.Model, profile *easing.Profile, opts Options) *Traverser {
	if opts.Resolution < 1 {
		opts.Resolution = constants.DefaultCurveResolution
	}
	if opts.Duration <= 0 {
		opts.Duration = constants.DefaultSegmentDuration
	}
	return &Traverser{
		model:     model,
		profile:   profile,
		opts:      opts,
		transform: Transform{Forward: vmath.V3F(0, 0, 1)},
	}
}

// Subscribe registers a listener for traversal events
func (t *Traverser) Subscribe(l Listener) {
	t.listeners = append(t.listeners, l)
}

func (t *Traverser) emit(ev Event) {
	for _, l := range t.listeners {
		l.OnTraversalEvent(ev)
	}
}

// Start validates the table for the active segment and sets running
// Repeated calls with an unchanged path are no-ops apart from the running flag
// Returns false when the path has no complete segment
func (t *Traverser) Start() bool {
	if !t.model.Playable() {
		return false
	}
	if err := t.ensureTable(); err != nil {
		// Active segment no longer exists; restart from the first
		t.segment = 0
		t.progress = 0
		if err := t.ensureTable(); err != nil {
			return false
		}
	}
	t.running = true
	return true
}

// Reset stops traversal and rewinds to the first segment
func (t *Traverser) Reset() {
	t.running = false
	t.segment = 0
	t.progress = 0
	t.table.Invalidate()
}

// Tick advances traversal by dt
// InvalidSegmentAccess stops traversal and is returned to the caller
func (t *Traverser) Tick(dt time.Duration) error {
	if !t.running {
		return nil
	}

	if t.progress < 1 {
		seg, err := t.model.Segment(t.segment)
		if err != nil {
			t.running = false
			return fmt.Errorf("traverse segment %d: %w", t.segment, err)
		}
		if err := t.ensureTable(); err != nil {
			t.running = false
			return err
		}

		eased := t.profile.Evaluate(t.progress)
		u := t.table.Invert(eased)

		pos := seg.Eval(u)
		ahead := seg.Eval(vmath.Clamp01(u + constants.LookAheadDistance))

		t.transform.Position = pos
		if dir := vmath.V3FSub(ahead, pos); vmath.V3FMagSq(dir) > 0 {
			t.transform.Forward = vmath.V3FNormalize(dir)
		}

		t.progress += dt.Seconds() / t.opts.Duration.Seconds()
		return nil
	}

	completed := t.segment
	length := t.table.TotalLength()
	if t.segment+1 < t.model.SegmentCount() {
		t.segment++
		t.progress = 0
		if err := t.ensureTable(); err != nil {
			t.running = false
			return err
		}
		t.emit(Event{Type: EventSegmentAdvanced, Segment: t.segment, Completed: completed, Length: length})
		return nil
	}

	t.running = false
	t.segment = 0
	t.progress = 0
	t.emit(Event{Type: EventPlaybackFinished, Segment: t.segment, Completed: completed, Length: length})
	return nil
}

// ensureTable rebuilds the arc-length table when the active segment or path revision changed
func (t *Traverser) ensureTable() error {
	key := curve.Key{Segment: t.segment, Revision: t.model.Revision()}
	if t.table.Matches(key) {
		return nil
	}
	seg, err := t.model.Segment(t.segment)
	if err != nil {
		t.table.Invalidate()
		return fmt.Errorf("build arc-length table: %w", err)
	}
	t.table.Build(seg, t.opts.Resolution, key)
	t.emit(Event{Type: EventTableBuilt, Segment: t.segment, Length: t.table.TotalLength()})
	return nil
}

// Running reports whether playback is active
func (t *Traverser) Running() bool {
	return t.running
}

// Progress returns the elapsed fraction of the active segment's duration
func (t *Traverser) Progress() float64 {
	return t.progress
}

// ActiveSegment returns the 0-based index of the active segment
func (t *Traverser) ActiveSegment() int {
	return t.segment
}

// ActiveAnchor returns the point index of the anchor ending the active segment
func (t *Traverser) ActiveAnchor() int {
	return path.AnchorIndex(t.segment)
}

// Transform returns the runner pose from the latest tick
func (t *Traverser) Transform() Transform {
	return t.transform
}

// Table returns the current arc-length table
func (t *Traverser) Table() *curve.ArcLengthTable {
	return &t.table
}

// Options returns the effective options
func (t *Traverser) Options() Options {
	return t.opts
}
