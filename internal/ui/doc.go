package ui

// Package ui contains the Fyne-based desktop user interface for the game.
// It forwards cell taps and button presses to the game engine and renders
// session snapshots, results, the leaderboard, rules and settings. All UI
// strings are localized via Localization.
