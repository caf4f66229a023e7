package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/schulte-grid/internal/config"
	"github.com/ytget/schulte-grid/internal/game"
	"github.com/ytget/schulte-grid/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.schulte-grid"
	AppName = "Schulte Grid"

	WindowWidth  = 760
	WindowHeight = 520
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	store := settings.NewLeaderboardStore()
	engine := game.NewService(store, game.NewRealScheduler(), nil)
	myWindow.SetOnClosed(engine.Close)

	root := ui.NewRootUI(myWindow, engine, store, settings)
	root.ShowRulesAfter(ui.RulesOnStartDelay)

	myWindow.ShowAndRun()
}
