package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/PixPMusic/gopher-fretboard/internal/config"
	"github.com/PixPMusic/gopher-fretboard/internal/controller"
	"github.com/PixPMusic/gopher-fretboard/internal/fretboard"
	"github.com/PixPMusic/gopher-fretboard/internal/midi"
	"github.com/PixPMusic/gopher-fretboard/internal/render"
	"github.com/PixPMusic/gopher-fretboard/internal/tray"
	"github.com/PixPMusic/gopher-fretboard/internal/window"
)

// initLogger configures the shared slog logger and routes the stdlib log
// package through it
func initLogger(level slog.Level, debug bool) *slog.Logger {
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// applyFlags lets command-line flags override the loaded config
func applyFlags(cmd *cli.Command, cfg *config.Config) error {
	if cmd.IsSet("root") {
		cfg.Board.Root = cmd.String("root")
	}
	if cmd.IsSet("frets") {
		cfg.Board.Frets = int(cmd.Int("frets"))
	}
	if cmd.IsSet("tuning") {
		cfg.CurrentTuning = cmd.String("tuning")
	}
	if cmd.IsSet("midi-in") {
		cfg.MIDI.InPort = cmd.String("midi-in")
	}
	if cmd.IsSet("width") {
		cfg.Window.Width = int(cmd.Int("width"))
	}
	if cmd.IsSet("height") {
		cfg.Window.Height = int(cmd.Int("height"))
	}
	return cfg.Validate()
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger := initLogger(cfg.LogLevel, cmd.Bool("debug"))

	opts, err := cfg.BoardOptions()
	if err != nil {
		return err
	}
	opts = append(opts, fretboard.WithLogger(logger))
	board := fretboard.New(opts...)

	keymap, err := controller.NewKeymap(cfg.KeyBindings...)
	if err != nil {
		return fmt.Errorf("failed to build keymap: %w", err)
	}

	if path := cmd.String("snapshot"); path != "" {
		return snapshot(board, path, cfg.Window.Width, cfg.Window.Height, logger)
	}

	if cmd.Bool("list-midi") {
		m := midi.NewManager(logger)
		defer m.Close()
		for _, name := range m.ListInPorts() {
			fmt.Println(name)
		}
		return nil
	}

	return runGUI(board, keymap, cfg, logger)
}

// snapshot draws one frame without opening a window and saves it as PNG
func snapshot(board *fretboard.Fretboard, path string, width, height int, logger *slog.Logger) error {
	surface := render.NewSurface(nil)
	controller.New(board, surface, controller.WithLogger(logger)).Redraw()

	if err := render.SavePNG(path, surface.Last(), width, height); err != nil {
		return err
	}
	logger.Info("snapshot saved", "path", path, "width", width, "height", height)
	return nil
}

func runGUI(board *fretboard.Fretboard, keymap controller.Keymap, cfg *config.Config, logger *slog.Logger) error {
	midiManager := midi.NewManager(logger)
	defer midiManager.Close()

	fyneApp := app.NewWithID("com.pixpmusic.gopherfretboard")

	mainWindow := window.NewMainWindow(fyneApp, board, window.Options{
		Keymap:      keymap,
		MIDIManager: midiManager,
		Width:       float32(cfg.Window.Width),
		Height:      float32(cfg.Window.Height),
		Logger:      logger,
	})

	tray.Setup(fyneApp, tray.Callbacks{
		OnOpen:  mainWindow.Show,
		OnEvent: mainWindow.Dispatch,
		OnQuit:  fyneApp.Quit,
	})

	mainWindow.StartMIDIListener(cfg.MIDI.InPort)

	// Blocks until the window is closed
	mainWindow.ShowAndRun()
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "gopher-fretboard",
		Usage:  "Interactive fretboard with scale overlays",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: user config dir)",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "root",
				Usage: "Starting root note, e.g. F, Bb, C#",
			},
			&cli.IntFlag{
				Name:  "frets",
				Usage: "Starting fret count",
			},
			&cli.StringFlag{
				Name:  "tuning",
				Usage: "Tuning preset name or ID",
			},
			&cli.StringFlag{
				Name:    "midi-in",
				Usage:   "MIDI input port whose notes select the root",
				Sources: cli.EnvVars("FRETBOARD_MIDI_IN"),
			},
			&cli.BoolFlag{
				Name:  "list-midi",
				Usage: "List MIDI input ports and exit",
			},
			&cli.StringFlag{
				Name:  "snapshot",
				Usage: "Render one frame to this PNG file and exit",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Window or snapshot width in pixels",
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "Window or snapshot height in pixels",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
