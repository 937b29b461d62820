// Package guide renders the 4-7-8 breathing guide window.
package guide

import (
	"context"
	"fmt"
	"image/color"
	"sync"
	"time"

	"airportmind/internal/core/breathing"
	"airportmind/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

var (
	accentColor = color.NRGBA{R: 99, G: 102, B: 241, A: 255}
	titleColor  = color.NRGBA{R: 49, G: 46, B: 129, A: 255}
)

// Config defines guide visuals and timing.
type Config struct {
	Breathing breathing.Config
	Icon      fyne.Resource
}

// Window owns the breathing guide dialog. The periodic driver lives
// exactly as long as the window is open.
type Window struct {
	mu         sync.Mutex
	window     fyne.Window
	config     Config
	timer      *breathing.Timer
	engine     *animation.Engine
	logger     zerolog.Logger
	session    *breathing.Session
	events     <-chan breathing.Event
	ctx        context.Context
	onChange   func(breathing.Cycle)
	circle     *canvas.Circle
	icon       *canvas.Image
	countLabel *canvas.Text
	phaseLabel *canvas.Text
	toggle     *widget.Button
	circleBox  *fyne.Container
	circleLay  *circleLayout
}

// New creates the guide window. It stays hidden until Open is called.
func New(ctx context.Context, app fyne.App, timer *breathing.Timer, config Config, logger zerolog.Logger) *Window {
	window := app.NewWindow("4-7-8 Breathing")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = accentColor
	circle.StrokeWidth = 4

	icon := canvas.NewImageFromResource(config.Icon)
	icon.FillMode = canvas.ImageFillContain

	countLabel := canvas.NewText("", accentColor)
	countLabel.Alignment = fyne.TextAlignCenter
	countLabel.TextStyle = fyne.TextStyle{Bold: true}
	countLabel.TextSize = 42

	phaseLabel := canvas.NewText("", titleColor)
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextSize = 20

	circleLay := &circleLayout{scale: animation.DefaultConfig().RestScale}
	circleBox := container.New(circleLay, circle, icon)

	guide := &Window{
		window:     window,
		config:     config,
		timer:      timer,
		logger:     logger.With().Str("component", "guide").Logger(),
		ctx:        ctx,
		circle:     circle,
		icon:       icon,
		countLabel: countLabel,
		phaseLabel: phaseLabel,
		circleBox:  circleBox,
		circleLay:  circleLay,
	}
	guide.engine = animation.New(animation.DefaultConfig(), guide.setScale)
	guide.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), guide.handleToggle)
	guide.toggle.Importance = widget.HighImportance

	title := widget.NewLabelWithStyle("4-7-8 Breathing", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	content := container.NewBorder(
		title,
		container.NewHBox(layout.NewSpacer(), guide.toggle, layout.NewSpacer()),
		nil,
		nil,
		container.NewVBox(circleBox, countLabel, phaseLabel),
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(420, 480))
	window.SetCloseIntercept(guide.Close)

	guide.render()
	return guide
}

// SetOnChange registers a callback fired on the UI goroutine after each update.
func (guide *Window) SetOnChange(handler func(breathing.Cycle)) {
	guide.mu.Lock()
	guide.onChange = handler
	guide.mu.Unlock()
}

// Open shows the guide and acquires the one-second driver.
func (guide *Window) Open() {
	guide.mu.Lock()
	if guide.session == nil {
		guide.session = breathing.Open(guide.ctx, guide.timer, guide.config.Breathing)
		guide.events = guide.timer.Subscribe(8)
		go guide.listen(guide.events)
		guide.logger.Debug().Msg("guide opened")
	}
	guide.mu.Unlock()

	guide.render()
	guide.window.Show()
	guide.window.RequestFocus()
}

// IsOpen reports whether the driver is currently held.
func (guide *Window) IsOpen() bool {
	guide.mu.Lock()
	defer guide.mu.Unlock()
	return guide.session != nil
}

// Toggle starts or pauses breathing, opening the guide first if needed.
func (guide *Window) Toggle() {
	if !guide.IsOpen() {
		guide.Open()
	}
	guide.handleToggle()
}

// Close releases the driver, resets the cycle and hides the window.
func (guide *Window) Close() {
	guide.mu.Lock()
	session := guide.session
	events := guide.events
	guide.session = nil
	guide.events = nil
	guide.mu.Unlock()

	if session != nil {
		session.Close()
		guide.timer.Unsubscribe(events)
		guide.logger.Debug().Msg("guide closed")
	}
	guide.engine.Rest()
	guide.render()
	guide.window.Hide()
}

func (guide *Window) handleToggle() {
	active := guide.timer.Toggle()
	if active {
		cycle := guide.timer.Snapshot()
		cue := animation.CueFor(cycle.Phase)
		guide.engine.Animate(guide.ctx, cue.Scale, remainingDuration(cycle, cue))
	} else {
		guide.engine.Stop()
	}
	guide.render()
}

func (guide *Window) listen(events <-chan breathing.Event) {
	for event := range events {
		switch event.Type {
		case breathing.EventPhaseChange:
			if !guide.timer.Snapshot().Active {
				break
			}
			cue := animation.CueFor(event.Cycle.Phase)
			guide.engine.Animate(guide.ctx, cue.Scale, cue.Duration)
		case breathing.EventReset:
			guide.engine.Stop()
		}
		fyne.Do(guide.render)
	}
}

func (guide *Window) render() {
	cycle := guide.timer.Snapshot()
	cue := animation.CueFor(cycle.Phase)

	guide.countLabel.Text = fmt.Sprintf("%d", cycle.SecondsRemaining)
	guide.countLabel.Refresh()
	guide.phaseLabel.Text = animation.Label(cycle.Phase)
	guide.phaseLabel.Refresh()
	guide.icon.Translucency = float64(1 - cue.IconOpacity)
	guide.icon.Refresh()

	if cycle.Active {
		guide.toggle.SetText("Pause")
		guide.toggle.SetIcon(theme.MediaPauseIcon())
		guide.toggle.Importance = widget.DangerImportance
	} else {
		guide.toggle.SetText("Start")
		guide.toggle.SetIcon(theme.MediaPlayIcon())
		guide.toggle.Importance = widget.HighImportance
	}
	guide.toggle.Refresh()

	guide.mu.Lock()
	handler := guide.onChange
	guide.mu.Unlock()
	if handler != nil {
		handler(cycle)
	}
}

func (guide *Window) setScale(scale float32) {
	fyne.Do(func() {
		guide.circleLay.scale = scale
		guide.circleBox.Refresh()
	})
}

func remainingDuration(cycle breathing.Cycle, cue animation.Cue) time.Duration {
	total := cycle.Phase.Duration()
	if total <= 0 {
		return cue.Duration
	}
	return cue.Duration * time.Duration(cycle.SecondsRemaining) / time.Duration(total)
}

const baseCircleSize = float32(160)

type circleLayout struct {
	scale float32
}

func (lay *circleLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	circle := objects[0]
	icon := objects[1]

	side := baseCircleSize * lay.scale
	circle.Resize(fyne.NewSize(side, side))
	circle.Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))

	iconSide := baseCircleSize * 0.4
	icon.Resize(fyne.NewSize(iconSide, iconSide))
	icon.Move(fyne.NewPos((size.Width-iconSide)/2, (size.Height-iconSide)/2))
}

func (lay *circleLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	side := baseCircleSize * 1.25
	return fyne.NewSize(side, side)
}
