package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"github.com/PixPMusic/gopher-fretboard/internal/controller"
)

// Callbacks for tray menu actions
type Callbacks struct {
	OnOpen  func()
	OnEvent func(controller.Event)
	OnQuit  func()
}

// toggles lists the tray entries that mirror the overlay keys
var toggles = []struct {
	label string
	event controller.Event
}{
	{"Toggle Other Diatonic (1)", controller.ToggleDiatonic},
	{"Toggle Blue Note (2)", controller.ToggleBlue},
	{"Toggle Harmonic Minor (3)", controller.ToggleHarmonicMinor},
}

// NewMenu builds the tray menu
func NewMenu(callbacks Callbacks) *fyne.Menu {
	items := []*fyne.MenuItem{
		fyne.NewMenuItem("Show Fretboard", func() {
			if callbacks.OnOpen != nil {
				callbacks.OnOpen()
			}
		}),
		fyne.NewMenuItemSeparator(),
	}

	for _, tg := range toggles {
		ev := tg.event
		items = append(items, fyne.NewMenuItem(tg.label, func() {
			if callbacks.OnEvent != nil {
				callbacks.OnEvent(ev)
			}
		}))
	}

	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if callbacks.OnQuit != nil {
				callbacks.OnQuit()
			}
		}),
	)

	return fyne.NewMenu("Fretboard", items...)
}

// Setup installs the system tray menu when running as a desktop app.
// It reports whether a tray was available.
func Setup(app fyne.App, callbacks Callbacks) bool {
	desk, ok := app.(desktop.App)
	if !ok {
		return false
	}

	desk.SetSystemTrayMenu(NewMenu(callbacks))
	desk.SetSystemTrayIcon(theme.GridIcon())
	return true
}
