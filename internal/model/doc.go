package model

// Package model defines domain data structures used across the app: grid
// cells, session snapshots, leaderboard records, performance tiers and the
// session status enum. Structures are plain values so the UI can render a
// snapshot without reaching back into the game engine.
