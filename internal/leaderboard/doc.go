// Package leaderboard keeps the best completion times in application
// preferences and renders them for display.
package leaderboard
