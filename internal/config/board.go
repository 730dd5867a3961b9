package config

import (
	"fmt"

	"github.com/PixPMusic/gopher-fretboard/internal/fretboard"
	"github.com/PixPMusic/gopher-fretboard/internal/overlay"
)

// BoardOptions turns the board section and current tuning into fretboard options
func (c *Config) BoardOptions() ([]fretboard.Option, error) {
	root, err := c.Board.RootPitch()
	if err != nil {
		return nil, fmt.Errorf("board root: %w", err)
	}

	tuning := c.GetCurrentTuning()
	if tuning == nil {
		return nil, fmt.Errorf("no tuning preset matches %q", c.CurrentTuning)
	}
	strs, err := tuning.Build()
	if err != nil {
		return nil, err
	}

	return []fretboard.Option{
		fretboard.WithStrings(strs...),
		fretboard.WithRoot(root),
		fretboard.WithFrets(c.Board.Frets),
		fretboard.WithOverlays(overlay.Config{
			Pentatonic:    c.Board.Pentatonic,
			BlueNote:      c.Board.BlueNote,
			OtherDiatonic: c.Board.OtherDiatonic,
			HarmonicMinor: c.Board.HarmonicMinor,
		}),
	}, nil
}
