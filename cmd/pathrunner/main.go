// Command pathrunner is a terminal editor for piecewise cubic Bézier paths with eased playback.
//
// Spawn mode places anchors with the mouse, Edit mode drags any point, Play mode runs a marker
// along the path at constant speed per segment.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/pathrunner/config"
	"github.com/lixenwraith/pathrunner/logging"
	"github.com/lixenwraith/pathrunner/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Ensure terminal is reset even if the editor crashes
	defer terminal.CrashHandler("PATHRUNNER")()

	fs := pflag.NewFlagSet("pathrunner", pflag.ExitOnError)
	config.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	if err := config.BindFlags(fs); err != nil {
		fmt.Fprintf(os.Stderr, "pathrunner: %v\n", err)
		return 1
	}
	configDir, _ := fs.GetString("config")
	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathrunner: %v\n", err)
		return 1
	}

	log, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathrunner: %v\n", err)
		return 1
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	a, err := newApp(screen, cfg, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "pathrunner: %v\n", err)
		return 1
	}

	if cfg.Audio.Enabled {
		if err := a.cues.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		} else {
			defer a.cues.Cleanup()
		}
	}
	if mute, _ := fs.GetBool("mute"); mute {
		a.cues.ToggleMute()
	}

	log.Info().
		Int("resolution", cfg.Curve.Resolution).
		Dur("duration", cfg.Curve.Duration).
		Str("easing", cfg.Curve.Easing).
		Msg("pathrunner started")

	a.loop(cfg.Frame.Interval)

	log.Info().Msg("pathrunner stopped")
	return 0
}
