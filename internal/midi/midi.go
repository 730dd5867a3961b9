package midi

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// NoteCallback is called when a Note On/Off event is received.
// It runs on the driver's goroutine.
type NoteCallback func(portName string, note uint8, isNoteOn bool)

// Manager handles MIDI input discovery and listening
type Manager struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewManager creates a new MIDI manager
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{logger: logger}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	if !DriverAvailable {
		return
	}
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports
func (m *Manager) ListInPorts() []string {
	if !DriverAvailable {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// GetInPort returns the first input port whose name contains name,
// matched case-insensitively. An exact match wins.
func (m *Manager) GetInPort(name string) (drivers.In, error) {
	if !DriverAvailable {
		return nil, fmt.Errorf("no MIDI driver compiled in")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	for _, in := range ins {
		if in.String() == name {
			return in, nil
		}
	}
	for _, in := range ins {
		if strings.Contains(strings.ToLower(in.String()), strings.ToLower(name)) {
			return in, nil
		}
	}
	return nil, fmt.Errorf("input port not found: %s", name)
}

// StartListening begins listening for notes on the named input port.
// The returned function stops the listener.
func (m *Manager) StartListening(inPortName string, callback NoteCallback) (func(), error) {
	if inPortName == "" {
		return nil, nil
	}

	inPort, err := m.GetInPort(inPortName)
	if err != nil {
		return nil, err
	}

	portName := inPort.String()
	stop, err := midi.ListenTo(inPort, func(msg midi.Message, timestampms int32) {
		note, isNoteOn, ok := ParseNote(msg)
		if !ok {
			return
		}
		m.logger.Debug("midi note", "port", portName, "note", note, "on", isNoteOn)
		callback(portName, note, isNoteOn)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start listening: %w", err)
	}

	m.logger.Info("listening for MIDI", "port", portName)
	return stop, nil
}

// ParseNote extracts the key from a note message. A Note On with zero
// velocity counts as Note Off.
func ParseNote(msg midi.Message) (note uint8, isNoteOn bool, ok bool) {
	var channel, key, velocity uint8

	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		return key, velocity > 0, true
	case msg.GetNoteOff(&channel, &key, &velocity):
		return key, false, true
	}
	return 0, false, false
}
