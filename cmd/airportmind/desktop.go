package main

import (
	"context"

	"airportmind/internal/core/anxiety"
	"airportmind/internal/core/breathing"
	"airportmind/internal/core/chat"
	"airportmind/internal/core/model"
	"airportmind/internal/core/mood"
	"airportmind/internal/core/soundscape"
	"airportmind/internal/platform"
	"airportmind/internal/ui/guide"
	"airportmind/internal/ui/home"
	"airportmind/internal/ui/tray"
	"airportmind/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
)

func runDesktop(parent context.Context, config model.Config, logger zerolog.Logger) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if showErr := platform.RequestShow(appName); showErr == nil {
			logger.Info().Msg("already running, raised the existing window")
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	fyneApp := app.NewWithID(appID)
	activeIcon := resources.MustLogo("airportmind.svg")
	pausedIcon := resources.MustLogo("airportmind_paused.svg")
	fyneApp.SetIcon(activeIcon)

	player := platform.NewMediaPlayer()
	if !player.Available() {
		logger.Warn().Msg("no media player found, calming sounds are unavailable")
	}
	board := soundscape.NewBoard(config.Sounds, player, logger)

	timer := breathing.NewTimer()
	guideWindow := guide.New(ctx, fyneApp, timer, guide.Config{
		Breathing: breathing.Config{TickInterval: config.Breathing.TickInterval},
		Icon:      resources.MustIcon("wind.svg"),
	}, logger)

	homeWindow := home.New(ctx, fyneApp, home.Config{
		Title: appTitle,
		Logo:  activeIcon,
		Size:  fyne.NewSize(config.Window.Width, config.Window.Height),
	}, home.Dependencies{
		Moods:   mood.NewSelector(),
		Sounds:  board,
		Chat:    chat.NewCompanion(config.Chat),
		Anxiety: anxiety.NewTracker(config.Anxiety.DefaultLevel),
	}, logger)
	homeWindow.SetOnOpenGuide(guideWindow.Open)

	desktopApp, ok := fyneApp.(desktop.App)
	if ok {
		var trayManager *tray.Manager
		trayManager = tray.New(desktopApp, appTitle, tray.Icons{
			Active: activeIcon,
			Paused: pausedIcon,
		}, tray.Callbacks{
			OnShowHome:        homeWindow.Show,
			OnOpenGuide:       guideWindow.Open,
			OnToggleBreathing: guideWindow.Toggle,
			OnStopSound: func() {
				if err := board.StopAll(); err != nil {
					logger.Warn().Err(err).Msg("stop sound")
				}
				homeWindow.RefreshSounds()
				trayManager.SetSoundPlaying("", false)
			},
			OnQuit: fyneApp.Quit,
		})
		guideWindow.SetOnChange(trayManager.SetCycle)
		homeWindow.SetOnSoundChange(trayManager.SetSoundPlaying)
		homeWindow.Window().SetCloseIntercept(homeWindow.Window().Hide)
	} else {
		logger.Info().Msg("system tray unsupported, closing the main window quits")
		homeWindow.Window().SetMaster()
	}

	go guard.OnShowRequest(func() {
		fyne.Do(homeWindow.Show)
	})

	fyneApp.Lifecycle().SetOnStopped(func() {
		guideWindow.Close()
		if err := board.StopAll(); err != nil {
			logger.Warn().Err(err).Msg("stop sound on exit")
		}
		cancel()
		logger.Info().Msg("stopped")
	})

	logger.Info().Str("version", version).Msg("starting")
	homeWindow.Show()
	fyneApp.Run()
	return nil
}
