package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pathrunner/config"
	"github.com/lixenwraith/pathrunner/easing"
	"github.com/lixenwraith/pathrunner/input"
	"github.com/lixenwraith/pathrunner/modes"
)

func testConfig() config.Config {
	return config.Config{
		Curve: config.CurveConfig{Resolution: 20, Duration: time.Second, Easing: "linear"},
		Gizmo: config.GizmoConfig{SphereRadius: 1, Color: "red", SampleColor: "fuchsia"},
		View:  config.ViewConfig{Scale: 2},
		Frame: config.FrameConfig{Interval: 16 * time.Millisecond},
		Audio: config.AudioConfig{Enabled: true, Volume: 0.5},
		Log:   config.LogConfig{Level: "info"},
	}
}

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)

	a, err := newApp(screen, testConfig(), zerolog.Nop())
	require.NoError(t, err)
	return a, screen
}

func click(t *testing.T, a *app, x, y int) {
	t.Helper()
	a.collector.Process(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	require.NoError(t, a.step(16*time.Millisecond))
	a.collector.Process(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	require.NoError(t, a.step(16*time.Millisecond))
}

func TestApp_SpawnPlayReset(t *testing.T) {
	a, screen := newTestApp(t)
	model := a.ctrl.Model()

	click(t, a, 30, 7)
	assert.Equal(t, 1, model.Len())
	r, _, _, _ := screen.GetContent(30, 7)
	assert.Equal(t, '◆', r)

	click(t, a, 10, 12)
	assert.Equal(t, 4, model.Len())
	assert.Equal(t, 4, a.scene.Len())
	assert.True(t, model.Playable())

	assert.False(t, a.handleIntent(input.Intent{Type: input.IntentPlay}))
	assert.Equal(t, modes.ModePlay, a.ctrl.Mode())
	require.NoError(t, a.step(250*time.Millisecond))
	snap := a.ctrl.Snapshot()
	assert.True(t, snap.Running)
	assert.Greater(t, snap.Progress, 0.0)

	a.handleIntent(input.Intent{Type: input.IntentReset})
	assert.Equal(t, 0, model.Len())
	assert.Equal(t, 0, a.scene.Len())
	assert.Equal(t, modes.ModeSpawn, a.ctrl.Mode())
}

func TestApp_ClicksOnUIRowsIgnored(t *testing.T) {
	a, _ := newTestApp(t)

	click(t, a, 10, 0)  // header
	click(t, a, 10, 19) // status
	assert.Equal(t, 0, a.ctrl.Model().Len())
}

func TestApp_ViewIntents(t *testing.T) {
	a, screen := newTestApp(t)

	a.handleIntent(input.Intent{Type: input.IntentPan, DX: 1})
	a.handleIntent(input.Intent{Type: input.IntentPan, DY: -1})
	assert.Greater(t, a.camera.Center.X, 0.0)
	assert.Greater(t, a.camera.Center.Z, 0.0)

	a.handleIntent(input.Intent{Type: input.IntentRecenter})
	assert.Zero(t, a.camera.Center.X)
	assert.Zero(t, a.camera.Center.Z)

	screen.SetSize(60, 30)
	a.handleIntent(input.Intent{Type: input.IntentResize})
	assert.Equal(t, 60, a.camera.Width)
	assert.Equal(t, 30, a.camera.Height)
}

func TestApp_CommandIntents(t *testing.T) {
	a, _ := newTestApp(t)

	a.handleIntent(input.Intent{Type: input.IntentEasing, Preset: easing.EaseIn})
	assert.Equal(t, easing.EaseIn, a.ctrl.Easing().Preset())

	a.handleIntent(input.Intent{Type: input.IntentEdit})
	assert.Equal(t, modes.ModeEdit, a.ctrl.Mode())
	a.handleIntent(input.Intent{Type: input.IntentSpawn})
	assert.Equal(t, modes.ModeSpawn, a.ctrl.Mode())

	a.handleIntent(input.Intent{Type: input.IntentMute})
	assert.True(t, a.cues.Muted())

	assert.True(t, a.handleIntent(input.Intent{Type: input.IntentQuit}))
}
