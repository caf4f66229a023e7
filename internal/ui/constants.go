package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRules    = "?"
	IconTimer    = "⏱"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	CellSize         float32 = 72
	CellTextSize     float32 = 28
	CellCornerRadius float32 = 6

	TimerTextSize float32 = 32

	SidePanelWidth       float32 = 260
	LeaderboardRowHeight float32 = 28
	LeaderboardMinHeight float32 = 5 * LeaderboardRowHeight
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 200
	RulesDialogWidth     float32 = 420
	RulesDialogHeight    float32 = 300
)

// Delays
const (
	RulesOnStartDelay = 500 * time.Millisecond
)
