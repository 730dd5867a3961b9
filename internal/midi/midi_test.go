package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name   string
		msg    midi.Message
		note   uint8
		on, ok bool
	}{
		{"note on", midi.NoteOn(0, 60, 100), 60, true, true},
		{"note on other channel", midi.NoteOn(9, 45, 1), 45, true, true},
		{"zero velocity is off", midi.NoteOn(0, 64, 0), 64, false, true},
		{"note off", midi.NoteOff(0, 69), 69, false, true},
		{"control change", midi.ControlChange(0, 7, 100), 0, false, false},
		{"program change", midi.ProgramChange(0, 3), 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, on, ok := ParseNote(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.on, on)
			assert.Equal(t, tt.note, note)
		})
	}
}

func TestStartListening_EmptyPortIsNoop(t *testing.T) {
	m := NewManager(nil)
	stop, err := m.StartListening("", func(string, uint8, bool) {})
	assert.NoError(t, err)
	assert.Nil(t, stop)
}
