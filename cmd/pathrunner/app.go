package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/pathrunner/audio"
	"github.com/lixenwraith/pathrunner/config"
	"github.com/lixenwraith/pathrunner/constants"
	"github.com/lixenwraith/pathrunner/easing"
	"github.com/lixenwraith/pathrunner/input"
	"github.com/lixenwraith/pathrunner/metrics"
	"github.com/lixenwraith/pathrunner/modes"
	"github.com/lixenwraith/pathrunner/motion"
	"github.com/lixenwraith/pathrunner/path"
	"github.com/lixenwraith/pathrunner/render"
	"github.com/lixenwraith/pathrunner/scene"
	"github.com/lixenwraith/pathrunner/terminal"
	"github.com/lixenwraith/pathrunner/vmath"
)

// app wires the editor to a terminal screen
// All state is owned by the goroutine running loop; the poller only forwards events
type app struct {
	screen    tcell.Screen
	camera    *scene.Camera
	scene     *scene.Scene
	ctrl      *modes.Controller
	collector *input.Collector
	orch      *render.Orchestrator
	theme     render.Theme
	cues      *audio.CuePlayer
	log       zerolog.Logger
}

func newApp(screen tcell.Screen, cfg config.Config, log zerolog.Logger) (*app, error) {
	w, h := screen.Size()
	cam := scene.NewCamera(w, h, cfg.View.Scale)
	sc := scene.New(cam)

	profile := easing.New()
	profile.Apply(cfg.EasingPreset())

	opts := motion.Options{
		Resolution: cfg.Curve.Resolution,
		Duration:   cfg.Curve.Duration,
	}
	ctrl := modes.NewController(path.NewModel(sc), profile, opts, sc, log)

	rec, err := metrics.New()
	if err != nil {
		return nil, err
	}
	ctrl.Traverser().Subscribe(rec)

	volume := cfg.Audio.Volume
	if !cfg.Audio.Enabled {
		volume = 0
	}
	cues := audio.NewCuePlayer(volume)
	ctrl.Traverser().Subscribe(cues)

	return &app{
		screen:    screen,
		camera:    cam,
		scene:     sc,
		ctrl:      ctrl,
		collector: input.NewCollector(),
		orch:      render.NewDefaultOrchestrator(screen),
		theme: render.Theme{
			SphereRadius: cfg.Gizmo.SphereRadius,
			MarkerColor:  render.ParseColor(cfg.Gizmo.Color, tcell.ColorRed),
			SampleColor:  render.ParseColor(cfg.Gizmo.SampleColor, tcell.ColorFuchsia),
		},
		cues: cues,
		log:  log,
	}, nil
}

// handleIntent applies a key command, returning true on quit
func (a *app) handleIntent(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return true
	case input.IntentResize:
		a.camera.Resize(a.screen.Size())
		a.orch.Resize()
	case input.IntentMute:
		muted := a.cues.ToggleMute()
		a.log.Info().Bool("muted", muted).Msg("audio toggled")
	case input.IntentSpawn:
		a.ctrl.ToSpawn()
	case input.IntentEdit:
		a.ctrl.ToEdit()
	case input.IntentPlay:
		a.ctrl.ToPlay()
	case input.IntentReset:
		a.ctrl.ToReset()
	case input.IntentEasing:
		a.ctrl.SetEasing(in.Preset)
	case input.IntentPan:
		a.camera.Center.X += float64(in.DX*constants.PanStepCells) / a.camera.Scale
		a.camera.Center.Z -= float64(in.DY*constants.PanStepCells) / (a.camera.Scale / 2)
	case input.IntentRecenter:
		a.camera.Center = vmath.Vec3F{}
	}
	return false
}

// step runs one frame: controller tick then draw
func (a *app) step(dt time.Duration) error {
	err := a.ctrl.Tick(a.collector.Frame(dt))
	a.orch.RenderFrame(render.Context{
		Frame:  a.ctrl.Snapshot(),
		Camera: a.camera,
		Theme:  a.theme,
		Muted:  a.cues.Muted(),
	})
	return err
}

// loop polls terminal events and ticks at interval until quit or the screen closes
func (a *app) loop(interval time.Duration) {
	events := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		defer terminal.CrashHandler("EVENT POLLER")()
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if intent := a.collector.Process(ev); intent != nil && a.handleIntent(*intent) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > constants.MaxFrameDelta {
				dt = constants.MaxFrameDelta
			}
			// controller already logged; the path stays editable
			_ = a.step(dt)
		}
	}
}
