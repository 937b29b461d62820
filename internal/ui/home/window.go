// Package home renders the main companion window.
package home

import (
	"context"
	"fmt"
	"strings"

	"airportmind/internal/core/anxiety"
	"airportmind/internal/core/chat"
	"airportmind/internal/core/mood"
	"airportmind/internal/core/soundscape"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

// Dependencies are the independent pieces of state the window presents.
type Dependencies struct {
	Moods   *mood.Selector
	Sounds  *soundscape.Board
	Chat    *chat.Companion
	Anxiety *anxiety.Tracker
}

// Config defines the main window appearance.
type Config struct {
	Title string
	Logo  fyne.Resource
	Size  fyne.Size
}

// Window is the main companion window.
type Window struct {
	ctx          context.Context
	window       fyne.Window
	deps         Dependencies
	logger       zerolog.Logger
	onOpenGuide  func()
	onSound      func(name string, playing bool)
	moodButtons  map[mood.Mood]*widget.Button
	soundButtons map[string]*widget.Button
	chatList     *widget.List
	chatEntry    *widget.Entry
	chatHistory  []chat.Message
	levelLabel   *widget.Label
	anxietyList  *widget.List
	anxietyLog   []anxiety.Entry
}

// New builds the main window.
func New(ctx context.Context, app fyne.App, config Config, deps Dependencies, logger zerolog.Logger) *Window {
	home := &Window{
		ctx:          ctx,
		window:       app.NewWindow(config.Title),
		deps:         deps,
		logger:       logger.With().Str("component", "home").Logger(),
		moodButtons:  make(map[mood.Mood]*widget.Button),
		soundButtons: make(map[string]*widget.Button),
	}
	if config.Logo != nil {
		home.window.SetIcon(config.Logo)
	}

	header := home.buildHeader(config)
	sections := container.NewGridWithColumns(2,
		home.buildBreathingCard(),
		home.buildSoundCard(),
		home.buildChatCard(),
		home.buildAnxietyCard(),
	)
	body := container.NewVBox(header, home.buildMoodCard(), sections)

	deps.Sounds.SetOnEnded(func(string) {
		fyne.Do(home.handleSoundEnded)
	})

	home.window.SetContent(container.NewVScroll(body))
	home.window.Resize(config.Size)
	return home
}

// Window returns the underlying Fyne window.
func (home *Window) Window() fyne.Window {
	return home.window
}

// SetOnOpenGuide sets the handler for the breathing exercise button.
func (home *Window) SetOnOpenGuide(handler func()) {
	home.onOpenGuide = handler
}

// SetOnSoundChange sets the handler notified after a track is toggled.
func (home *Window) SetOnSoundChange(handler func(name string, playing bool)) {
	home.onSound = handler
}

// Show displays the window.
func (home *Window) Show() {
	home.window.Show()
	home.window.RequestFocus()
}

// RefreshSounds redraws the per-track playing indicators.
func (home *Window) RefreshSounds() {
	for name, button := range home.soundButtons {
		if home.deps.Sounds.IsPlaying(name) {
			button.SetIcon(theme.VolumeUpIcon())
			button.Importance = widget.HighImportance
		} else {
			button.SetIcon(theme.VolumeMuteIcon())
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}
}

func (home *Window) buildHeader(config Config) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(config.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("Your personal companion for a peaceful journey", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	if config.Logo == nil {
		return container.NewVBox(title, subtitle)
	}
	logo := canvas.NewImageFromResource(config.Logo)
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSize(48, 48))
	return container.NewVBox(container.NewCenter(logo), title, subtitle)
}

func (home *Window) buildMoodCard() fyne.CanvasObject {
	grid := container.NewGridWithColumns(4)
	for _, option := range mood.Options() {
		option := option
		button := widget.NewButton(displayName(option), func() {
			home.handleMood(option)
		})
		home.moodButtons[option] = button
		grid.Add(button)
	}
	return widget.NewCard("How are you feeling?", "", grid)
}

func (home *Window) buildBreathingCard() fyne.CanvasObject {
	start := widget.NewButtonWithIcon("Start Breathing Exercise", theme.MediaPlayIcon(), func() {
		if home.onOpenGuide != nil {
			home.onOpenGuide()
		}
	})
	hint := widget.NewLabel("Inhale for 4, hold for 7, exhale for 8.")
	hint.Wrapping = fyne.TextWrapWord
	return widget.NewCard("Guided Breathing", "", container.NewVBox(hint, start))
}

func (home *Window) buildSoundCard() fyne.CanvasObject {
	rows := container.NewVBox()
	for _, sound := range home.deps.Sounds.Catalog() {
		name := sound.Name
		button := widget.NewButtonWithIcon(name, theme.VolumeMuteIcon(), func() {
			home.handleSound(name)
		})
		button.Alignment = widget.ButtonAlignLeading
		home.soundButtons[name] = button
		rows.Add(button)
	}
	return widget.NewCard("Calming Sounds", "", rows)
}

func (home *Window) buildChatCard() fyne.CanvasObject {
	home.chatHistory = home.deps.Chat.History()
	home.chatList = widget.NewList(
		func() int {
			return len(home.chatHistory)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Wrapping = fyne.TextWrapWord
			return label
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			label := object.(*widget.Label)
			message := home.chatHistory[id]
			if message.FromUser {
				label.Alignment = fyne.TextAlignTrailing
				label.Importance = widget.MediumImportance
			} else {
				label.Alignment = fyne.TextAlignLeading
				label.Importance = widget.SuccessImportance
			}
			label.SetText(message.Text)
		},
	)

	home.chatEntry = widget.NewEntry()
	home.chatEntry.SetPlaceHolder("Type your message...")
	home.chatEntry.OnSubmitted = func(string) {
		home.handleChatSubmit()
	}
	send := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), home.handleChatSubmit)

	input := container.NewBorder(nil, nil, nil, send, home.chatEntry)
	history := container.NewGridWrap(fyne.NewSize(360, 192), home.chatList)
	return widget.NewCard("AI Companion", "", container.NewBorder(nil, input, nil, nil, history))
}

func (home *Window) buildAnxietyCard() fyne.CanvasObject {
	slider := widget.NewSlider(anxiety.MinLevel, anxiety.MaxLevel)
	slider.Step = 1
	slider.SetValue(float64(home.deps.Anxiety.Level()))
	home.levelLabel = widget.NewLabelWithStyle(fmt.Sprintf("%d", home.deps.Anxiety.Level()), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	slider.OnChanged = home.handleLevel

	record := widget.NewButton("Log Current Level", home.handleRecord)
	record.Importance = widget.WarningImportance

	home.anxietyList = widget.NewList(
		func() int {
			return len(home.anxietyLog)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewLabel(""), layout.NewSpacer(), widget.NewLabel(""))
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			entry := home.anxietyLog[id]
			row := object.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(entry.Clock())
			row.Objects[2].(*widget.Label).SetText(fmt.Sprintf("Level: %d", entry.Level))
		},
	)

	controls := container.NewBorder(nil, nil, nil, home.levelLabel, slider)
	history := container.NewGridWrap(fyne.NewSize(360, 128), home.anxietyList)
	return widget.NewCard("Anxiety Tracker", "", container.NewVBox(controls, record, history))
}

func (home *Window) handleMood(selected mood.Mood) {
	if err := home.deps.Moods.Select(selected); err != nil {
		home.showError(err)
		return
	}
	for option, button := range home.moodButtons {
		if option == selected {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}
	home.logger.Info().Str("mood", string(selected)).Msg("mood checked in")
}

func (home *Window) handleSound(name string) {
	err := home.deps.Sounds.Toggle(home.ctx, name)
	home.RefreshSounds()
	if home.onSound != nil {
		home.onSound(home.deps.Sounds.State())
	}
	if err != nil {
		home.showError(err)
	}
}

func (home *Window) handleSoundEnded() {
	home.RefreshSounds()
	if home.onSound != nil {
		home.onSound(home.deps.Sounds.State())
	}
}

func (home *Window) handleChatSubmit() {
	if _, err := home.deps.Chat.Submit(home.chatEntry.Text); err != nil {
		return
	}
	home.chatEntry.SetText("")
	home.chatHistory = home.deps.Chat.History()
	home.chatList.Refresh()
	home.chatList.ScrollToBottom()
}

func (home *Window) handleLevel(value float64) {
	level := int(value + 0.5)
	if err := home.deps.Anxiety.SetLevel(level); err != nil {
		home.showError(err)
		return
	}
	home.levelLabel.SetText(fmt.Sprintf("%d", level))
}

func (home *Window) handleRecord() {
	entry := home.deps.Anxiety.Record()
	home.anxietyLog = home.deps.Anxiety.History()
	home.anxietyList.Refresh()
	home.anxietyList.ScrollToBottom()
	home.logger.Info().Int("level", entry.Level).Msg("anxiety level logged")
}

func (home *Window) showError(err error) {
	home.logger.Warn().Err(err).Msg("action failed")
	dialog.ShowError(err, home.window)
}

func displayName(option mood.Mood) string {
	name := string(option)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
