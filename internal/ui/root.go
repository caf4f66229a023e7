package ui

import (
	"fmt"
	"image/color"
	"log"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/schulte-grid/internal/config"
	"github.com/ytget/schulte-grid/internal/game"
	"github.com/ytget/schulte-grid/internal/leaderboard"
	"github.com/ytget/schulte-grid/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	engine       game.Engine
	store        *leaderboard.Store
	settings     *config.Settings
	localization *Localization

	// last rendered snapshot, only touched on the UI thread
	session model.Session

	// Controls
	startBtn   *widget.Button
	restartBtn *widget.Button
	rulesBtn   *widget.Button

	// Board
	cells       [model.CellCount]*GridCell
	timerText   *canvas.Text
	statusLabel *widget.Label

	// Result panel
	resultContainer   *fyne.Container
	resultTitle       *widget.Label
	resultDuration    *widget.Label
	resultTier        *canvas.Text
	resultDescription *widget.Label
	resultRank        *widget.Label

	leaderboardPanel *LeaderboardPanel
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, engine game.Engine, store *leaderboard.Store, settings *config.Settings) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.ResolvedLanguage())

	ui := &RootUI{
		window:       window,
		engine:       engine,
		store:        store,
		settings:     settings,
		localization: localization,
		session:      engine.Session(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Set up callbacks for game and leaderboard updates
	ui.engine.SetUpdateCallback(ui.onSessionUpdate)
	ui.store.SetChangeCallback(ui.onLeaderboardChange)

	ui.render(ui.session)
	ui.leaderboardPanel.SetRecords(ui.store.Records())

	log.Printf("RootUI initialized: language=%s records=%d", localization.GetCurrentLanguage(), len(ui.store.Records()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Controls
	ui.startBtn = widget.NewButton("", ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	ui.restartBtn = widget.NewButton("", ui.onStartClick)
	ui.rulesBtn = widget.NewButton("", ui.ShowRules)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.timerText = canvas.NewText(model.FormatDuration(0), theme.Color(theme.ColorNameForeground))
	ui.timerText.TextSize = TimerTextSize
	ui.timerText.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	ui.statusLabel = widget.NewLabel("")

	controls := container.NewHBox(ui.startBtn, ui.restartBtn, ui.rulesBtn, settingsBtn)
	topPanel := container.NewBorder(nil, nil, controls, ui.timerText, container.NewCenter(ui.statusLabel))

	// Logo is optional
	if logo, err := LoadLogoResource(); err == nil {
		ui.window.SetIcon(logo)
	}

	// Grid
	cellObjects := make([]fyne.CanvasObject, 0, model.CellCount)
	for i := range ui.cells {
		ui.cells[i] = NewGridCell(i, ui.onCellTapped)
		cellObjects = append(cellObjects, ui.cells[i])
	}
	grid := container.NewGridWithColumns(model.GridSide, cellObjects...)

	// Result panel (hidden until a game finishes)
	ui.resultTitle = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.resultDuration = widget.NewLabel("")
	ui.resultTier = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.resultTier.TextStyle = fyne.TextStyle{Bold: true}
	ui.resultTier.TextSize = TimerTextSize / 2
	ui.resultDescription = widget.NewLabel("")
	ui.resultDescription.Wrapping = fyne.TextWrapWord
	ui.resultRank = widget.NewLabel("")
	ui.resultContainer = container.NewVBox(
		ui.resultTitle,
		ui.resultDuration,
		ui.resultTier,
		ui.resultDescription,
		ui.resultRank,
		widget.NewSeparator(),
	)
	ui.resultContainer.Hide()

	ui.leaderboardPanel = NewLeaderboardPanel(ui.localization)

	sideSizer := canvas.NewRectangle(color.Transparent)
	sideSizer.SetMinSize(fyne.NewSize(SidePanelWidth, LeaderboardMinHeight))
	sidePanel := container.NewBorder(
		ui.resultContainer, // top
		nil,                // bottom
		nil,                // left
		nil,                // right
		container.NewStack(sideSizer, ui.leaderboardPanel.Container()),
	)

	content := container.NewBorder(
		container.NewVBox(topPanel, widget.NewSeparator()), // top
		nil,                            // bottom
		nil,                            // left
		container.NewPadded(sidePanel), // right
		container.NewPadded(grid),      // center
	)

	ui.refreshUITexts()
	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	rulesItem := fyne.NewMenuItem(ui.localization.GetText(KeyRules), ui.ShowRules)
	resetItem := fyne.NewMenuItem(ui.localization.GetText(KeyResetLeaderboard), ui.onResetLeaderboard)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyGame), rulesItem, resetItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.applyLanguage()
}

// applyLanguage re-renders every text in the current language
func (ui *RootUI) applyLanguage() {
	ui.refreshUITexts()
	ui.createMenu()
	ui.leaderboardPanel.Refresh()
	ui.render(ui.session)
}

// refreshUITexts updates all static UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.startBtn.SetText(ui.localization.GetText(KeyStart))
	ui.restartBtn.SetText(ui.localization.GetText(KeyRestart))
	ui.rulesBtn.SetText(ui.localization.GetText(KeyRules))
	ui.resultTitle.SetText(ui.localization.GetText(KeyResultTitle))
}

// onStartClick starts a new game; it also serves as restart
func (ui *RootUI) onStartClick() {
	ui.engine.Start()
}

// onCellTapped forwards a cell tap to the engine
func (ui *RootUI) onCellTapped(index int) {
	ui.engine.Click(index)
}

// onSessionUpdate handles snapshots from the game engine
func (ui *RootUI) onSessionUpdate(session model.Session) {
	fyne.Do(func() {
		ui.render(session)
	})
}

// onLeaderboardChange handles leaderboard changes
func (ui *RootUI) onLeaderboardChange(records []model.Record) {
	fyne.Do(func() {
		ui.leaderboardPanel.SetRecords(records)
	})
}

// render updates the board from a session snapshot
func (ui *RootUI) render(session model.Session) {
	ui.session = session

	accepts := session.Status.AcceptsClicks()
	for i, cell := range session.Cells {
		ui.cells[i].SetCell(cell, accepts)
	}

	ui.timerText.Text = session.GetElapsedString()
	ui.timerText.Refresh()

	switch session.Status {
	case model.SessionStatusCountdown:
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusCountdown))
	case model.SessionStatusRunning:
		ui.statusLabel.SetText(ui.localization.Format(KeyStatusRunningFmt, session.NextExpected))
	case model.SessionStatusFinished:
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusFinished))
	default:
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusIdle))
	}

	// Start and rules are unavailable while a game is in progress
	if session.Status.IsActive() {
		ui.startBtn.Disable()
		ui.rulesBtn.Disable()
	} else {
		ui.startBtn.Enable()
		ui.rulesBtn.Enable()
	}
	if session.Status == model.SessionStatusIdle {
		ui.restartBtn.Disable()
	} else {
		ui.restartBtn.Enable()
	}

	ui.renderResult(session.Result)
}

// renderResult shows or hides the result panel
func (ui *RootUI) renderResult(result *model.Result) {
	if result == nil {
		ui.resultContainer.Hide()
		return
	}

	tier := ui.localization.Tier(result.Tier)
	ui.resultDuration.SetText(ui.localization.Format(KeyResultDurationFmt, model.FormatDuration(result.Duration.Milliseconds())))
	ui.resultTier.Text = tier.Label
	ui.resultTier.Color = TierColor(tier.Level)
	ui.resultTier.Refresh()
	ui.resultDescription.SetText(tier.Description)
	if result.Rank > 0 {
		ui.resultRank.SetText(ui.localization.Format(KeyResultRankFmt, result.Rank))
	} else {
		ui.resultRank.SetText(ui.localization.GetText(KeyResultNotRanked))
	}
	ui.resultContainer.Show()
}

// ShowRules shows the rules dialog
func (ui *RootUI) ShowRules() {
	ShowRulesDialog(ui.window, ui.localization, ui.onStartClick)
}

// ShowRulesAfter shows the rules dialog after delay if enabled in settings
func (ui *RootUI) ShowRulesAfter(delay time.Duration) {
	if !ui.settings.GetShowRulesOnStart() {
		return
	}
	time.AfterFunc(delay, func() {
		fyne.Do(func() {
			// Skip if the player already started
			if ui.session.Status.IsActive() {
				return
			}
			ui.ShowRules()
		})
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.ResolvedLanguage())
		ui.applyLanguage()
		dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
	})
}

// onResetLeaderboard asks for confirmation and clears the leaderboard
func (ui *RootUI) onResetLeaderboard() {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyResetLeaderboard),
		ui.localization.GetText(KeyResetConfirm),
		func(confirmed bool) {
			if confirmed {
				ui.resetLeaderboard()
			}
		},
		ui.window,
	)
}

// resetLeaderboard clears all saved records
func (ui *RootUI) resetLeaderboard() {
	if err := ui.store.Clear(); err != nil {
		log.Printf("Failed to reset leaderboard: %v", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorSavingResults), err), ui.window)
	}
}
