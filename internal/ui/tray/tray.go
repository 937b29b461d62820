package tray

import (
	"fmt"

	"airportmind/internal/core/breathing"
	"airportmind/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowHome        func()
	OnOpenGuide       func()
	OnToggleBreathing func()
	OnStopSound       func()
	OnQuit            func()
}

// Icons are the tray icons for breathing and resting.
type Icons struct {
	Active fyne.Resource
	Paused fyne.Resource
}

// Manager handles system tray state. The menu is installed once; later
// changes mutate its items and refresh it in place.
type Manager struct {
	app         desktop.App
	title       string
	icons       Icons
	menu        *fyne.Menu
	statusItem  *fyne.MenuItem
	breatheItem *fyne.MenuItem
	soundItem   *fyne.MenuItem
	callbacks   Callbacks
	active      bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, title string, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		icons:     icons,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem(statusText("resting"), nil)
	manager.statusItem.Disabled = true

	manager.breatheItem = fyne.NewMenuItem("Start breathing", func() {
		if manager.callbacks.OnToggleBreathing != nil {
			manager.callbacks.OnToggleBreathing()
		}
	})

	manager.soundItem = fyne.NewMenuItem("Stop sound", func() {
		if manager.callbacks.OnStopSound != nil {
			manager.callbacks.OnStopSound()
		}
	})
	manager.soundItem.Disabled = true

	manager.menu = fyne.NewMenu(title,
		manager.statusItem,
		fyne.NewMenuItem("Open "+title, func() {
			if manager.callbacks.OnShowHome != nil {
				manager.callbacks.OnShowHome()
			}
		}),
		fyne.NewMenuItem("Breathing guide", func() {
			if manager.callbacks.OnOpenGuide != nil {
				manager.callbacks.OnOpenGuide()
			}
		}),
		manager.breatheItem,
		manager.soundItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)

	if app != nil {
		app.SetSystemTrayMenu(manager.menu)
		if icons.Paused != nil {
			app.SetSystemTrayIcon(icons.Paused)
		}
	}
	return manager
}

// SetCycle reflects the breathing state in the menu. The status line follows
// every tick; the toggle label and the icon change only when Active flips.
func (manager *Manager) SetCycle(cycle breathing.Cycle) {
	if cycle.Active {
		manager.statusItem.Label = statusText(fmt.Sprintf("%s · %ds", animation.Label(cycle.Phase), cycle.SecondsRemaining))
	} else {
		manager.statusItem.Label = statusText("resting")
	}

	if cycle.Active != manager.active {
		manager.active = cycle.Active
		if cycle.Active {
			manager.breatheItem.Label = "Pause breathing"
		} else {
			manager.breatheItem.Label = "Start breathing"
		}
		manager.setIcon()
	}
	manager.refresh()
}

// SetSoundPlaying toggles the stop sound item.
func (manager *Manager) SetSoundPlaying(name string, playing bool) {
	manager.soundItem.Disabled = !playing
	if playing {
		manager.soundItem.Label = fmt.Sprintf("Stop %s", name)
	} else {
		manager.soundItem.Label = "Stop sound"
	}
	manager.refresh()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) setIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Paused
	if manager.active {
		icon = manager.icons.Active
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refresh() {
	if manager.app == nil {
		return
	}
	manager.menu.Refresh()
}

func statusText(label string) string {
	return "Status: " + label
}
