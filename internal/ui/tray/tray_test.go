package tray

import (
	"testing"

	"airportmind/internal/core/breathing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDesktop struct {
	menus []*fyne.Menu
	icons []fyne.Resource
}

func (app *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu)   { app.menus = append(app.menus, menu) }
func (app *fakeDesktop) SetSystemTrayIcon(icon fyne.Resource) { app.icons = append(app.icons, icon) }
func (app *fakeDesktop) SetSystemTrayWindow(fyne.Window)      {}

var testIcons = Icons{
	Active: fyne.NewStaticResource("active.svg", []byte("<svg/>")),
	Paused: fyne.NewStaticResource("paused.svg", []byte("<svg/>")),
}

func TestManagerStatus(t *testing.T) {
	test.NewTempApp(t)
	desktop := &fakeDesktop{}
	manager := New(desktop, "AirportMind", testIcons, Callbacks{})
	require.Len(t, desktop.menus, 1)
	assert.Equal(t, "Status: resting", manager.Status())

	manager.SetCycle(breathing.Cycle{Phase: breathing.PhaseHold, SecondsRemaining: 6, Active: true})
	assert.Equal(t, "Status: Hold · 6s", manager.Status())
	assert.Equal(t, "Pause breathing", manager.breatheItem.Label)

	manager.SetCycle(breathing.InitialCycle())
	assert.Equal(t, "Status: resting", manager.Status())
	assert.Equal(t, "Start breathing", manager.breatheItem.Label)
}

func TestTicksDoNotReinstallMenuOrIcon(t *testing.T) {
	test.NewTempApp(t)
	desktop := &fakeDesktop{}
	manager := New(desktop, "AirportMind", testIcons, Callbacks{})
	require.Equal(t, []fyne.Resource{testIcons.Paused}, desktop.icons)

	cycle := breathing.Cycle{Phase: breathing.PhaseInhale, SecondsRemaining: 4, Active: true}
	for i := 0; i < 10; i++ {
		manager.SetCycle(cycle)
		cycle = breathing.Advance(cycle)
	}
	assert.Len(t, desktop.menus, 1)
	assert.Equal(t, []fyne.Resource{testIcons.Paused, testIcons.Active}, desktop.icons)
	assert.Equal(t, "Status: Hold · 2s", manager.Status())

	cycle.Active = false
	manager.SetCycle(cycle)
	manager.SetCycle(cycle)
	assert.Len(t, desktop.menus, 1)
	assert.Equal(t, []fyne.Resource{testIcons.Paused, testIcons.Active, testIcons.Paused}, desktop.icons)
}

func TestManagerCallbacks(t *testing.T) {
	test.NewTempApp(t)
	desktop := &fakeDesktop{}
	toggled, quit := 0, 0
	manager := New(desktop, "AirportMind", testIcons, Callbacks{
		OnToggleBreathing: func() { toggled++ },
		OnQuit:            func() { quit++ },
	})

	manager.breatheItem.Action()
	assert.Equal(t, 1, toggled)

	items := desktop.menus[0].Items
	items[len(items)-1].Action()
	assert.Equal(t, 1, quit)
}

func TestManagerSound(t *testing.T) {
	test.NewTempApp(t)
	desktop := &fakeDesktop{}
	manager := New(desktop, "AirportMind", testIcons, Callbacks{})
	assert.True(t, manager.soundItem.Disabled)

	manager.SetSoundPlaying("Ocean Waves", true)
	assert.False(t, manager.soundItem.Disabled)
	assert.Equal(t, "Stop Ocean Waves", manager.soundItem.Label)

	manager.SetSoundPlaying("", false)
	assert.True(t, manager.soundItem.Disabled)
	assert.Len(t, desktop.menus, 1)
}
