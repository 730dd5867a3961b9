//go:build cgo

package midi

import (
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

// DriverAvailable reports whether a MIDI driver was compiled in
const DriverAvailable = true
