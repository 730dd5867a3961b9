// Package controller turns key presses into fretboard state changes.
//
// Every handled event is followed by exactly one synchronous redraw:
// clear, reset aspect, draw, present. Nothing is queued or batched, so
// callers must invoke it from a single goroutine.
package controller

import (
	"log/slog"

	"github.com/PixPMusic/gopher-fretboard/internal/fretboard"
	"github.com/PixPMusic/gopher-fretboard/internal/overlay"
	"github.com/PixPMusic/gopher-fretboard/internal/render"
	"github.com/PixPMusic/gopher-fretboard/internal/theory"
)

// Controller applies events to a board and redraws it
type Controller struct {
	board    *fretboard.Fretboard
	renderer render.Renderer
	keymap   Keymap
	logger   *slog.Logger

	// OnChange, if set, runs after every redraw
	OnChange func()
}

// Option configures a Controller
type Option func(*Controller)

// WithKeymap replaces the default keymap
func WithKeymap(km Keymap) Option {
	return func(c *Controller) { c.keymap = km }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a controller driving board onto r
func New(board *fretboard.Fretboard, r render.Renderer, opts ...Option) *Controller {
	km, _ := NewKeymap()
	c := &Controller{
		board:    board,
		renderer: r,
		keymap:   km,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Board returns the controlled board
func (c *Controller) Board() *fretboard.Fretboard { return c.board }

// HandleKey dispatches the event bound to key. Unbound keys are ignored
// and do not redraw. It reports whether the key was handled.
func (c *Controller) HandleKey(key string) bool {
	ev, ok := c.keymap.Lookup(key)
	if !ok {
		c.logger.Debug("key ignored", "key", key)
		return false
	}
	c.Dispatch(ev)
	return true
}

// Dispatch applies ev and redraws
func (c *Controller) Dispatch(ev Event) {
	c.apply(ev)
	c.logger.Debug("event applied",
		"event", ev,
		"root", c.board.Root(),
		"frets", c.board.Frets(),
	)
	c.Redraw()
}

// SetRoot selects a new root, e.g. from a MIDI note, and redraws
func (c *Controller) SetRoot(root theory.PitchClass) {
	c.board.SetRoot(root)
	c.logger.Debug("root set", "root", root)
	c.Redraw()
}

func (c *Controller) apply(ev Event) {
	switch ev {
	case ToggleDiatonic:
		c.board.UpdateOverlays(func(o *overlay.Config) { o.OtherDiatonic = !o.OtherDiatonic })
	case ToggleBlue:
		c.board.UpdateOverlays(func(o *overlay.Config) { o.BlueNote = !o.BlueNote })
	case ToggleHarmonicMinor:
		c.board.UpdateOverlays(func(o *overlay.Config) { o.HarmonicMinor = !o.HarmonicMinor })
	case RootUp:
		c.board.ShiftRoot(1)
	case RootDown:
		c.board.ShiftRoot(-1)
	case FretsDecrease:
		c.board.SetFrets(c.board.Frets() - 1)
	case FretsIncrease:
		c.board.SetFrets(c.board.Frets() + 1)
	default:
		c.logger.Warn("unknown event", "event", ev)
	}
}

// Redraw clears the surface and paints the board from scratch
func (c *Controller) Redraw() {
	c.renderer.Clear()
	c.renderer.ResetAspect()
	c.board.Draw(c.renderer)
	c.renderer.Present()

	if c.OnChange != nil {
		c.OnChange()
	}
}
