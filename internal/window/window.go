package window

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/PixPMusic/gopher-fretboard/internal/controller"
	"github.com/PixPMusic/gopher-fretboard/internal/fretboard"
	"github.com/PixPMusic/gopher-fretboard/internal/midi"
	"github.com/PixPMusic/gopher-fretboard/internal/render"
	"github.com/PixPMusic/gopher-fretboard/internal/theory"
)

const appTitle = "Fretboard"

// MainWindow manages the main application window
type MainWindow struct {
	window      fyne.Window
	app         fyne.App
	ctrl        *controller.Controller
	surface     *render.Surface
	board       *BoardView
	titleLabel  *widget.Label
	midiManager *midi.Manager
	logger      *slog.Logger

	// MIDI input listener
	midiStop func()
}

// Options configures the main window
type Options struct {
	Keymap      controller.Keymap
	MIDIManager *midi.Manager
	Width       float32
	Height      float32
	Logger      *slog.Logger
}

// NewMainWindow creates the main window and draws the first frame
func NewMainWindow(app fyne.App, board *fretboard.Fretboard, opts Options) *MainWindow {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	win := app.NewWindow(appTitle)

	mw := &MainWindow{
		window:      win,
		app:         app,
		board:       NewBoardView(),
		titleLabel:  widget.NewLabel(""),
		midiManager: opts.MIDIManager,
		logger:      opts.Logger,
	}
	mw.titleLabel.Alignment = fyne.TextAlignCenter

	mw.surface = render.NewSurface(mw.present)

	ctrlOpts := []controller.Option{controller.WithLogger(opts.Logger)}
	if opts.Keymap != nil {
		ctrlOpts = append(ctrlOpts, controller.WithKeymap(opts.Keymap))
	}
	mw.ctrl = controller.New(board, mw.surface, ctrlOpts...)

	mw.setupUI()

	if opts.Width > 0 && opts.Height > 0 {
		win.Resize(fyne.NewSize(opts.Width, opts.Height))
	}
	win.CenterOnScreen()
	win.SetMaster()
	win.SetCloseIntercept(func() {
		mw.StopMIDIListener()
		win.Close()
	})

	mw.ctrl.Redraw()
	return mw
}

func (mw *MainWindow) setupUI() {
	mw.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		mw.ctrl.HandleKey(string(ev.Name))
	})

	mw.window.SetContent(container.NewBorder(mw.titleLabel, nil, nil, nil, mw.board))
}

// present receives each finished frame from the controller
func (mw *MainWindow) present(scene render.Scene) {
	mw.board.SetScene(scene)
	mw.titleLabel.SetText(scene.Title)

	first, _, _ := strings.Cut(scene.Title, "\n")
	mw.window.SetTitle(appTitle + " - " + strings.TrimSpace(first))
}

// Show shows the window
func (mw *MainWindow) Show() {
	mw.window.Show()
}

// ShowAndRun shows the window and runs the app until it quits
func (mw *MainWindow) ShowAndRun() {
	mw.window.ShowAndRun()
}

// Controller returns the controller driving this window
func (mw *MainWindow) Controller() *controller.Controller {
	return mw.ctrl
}

// Dispatch applies an event as if its key had been pressed
func (mw *MainWindow) Dispatch(ev controller.Event) {
	mw.ctrl.Dispatch(ev)
}

// StartMIDIListener listens on the named port and moves the root to every
// note pressed there
func (mw *MainWindow) StartMIDIListener(inPort string) {
	mw.StopMIDIListener()

	if mw.midiManager == nil || inPort == "" {
		return
	}

	stop, err := mw.midiManager.StartListening(inPort, func(portName string, note uint8, isNoteOn bool) {
		if !isNoteOn {
			return
		}
		// MIDI callbacks arrive on the driver goroutine
		fyne.Do(func() {
			mw.ctrl.SetRoot(theory.FromMIDI(note))
		})
	})
	if err != nil {
		mw.logger.Warn("failed to start MIDI listener", "port", inPort, "error", err)
		return
	}
	mw.midiStop = stop
}

// StopMIDIListener stops the MIDI input listener
func (mw *MainWindow) StopMIDIListener() {
	if mw.midiStop != nil {
		mw.midiStop()
	}
	mw.midiStop = nil
}
