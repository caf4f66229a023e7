package game

// Package game implements the Schulte grid engine: the shuffle generator, the
// grid click validator, the stopwatch, and the session state machine
// (Idle -> Countdown -> Running -> Finished) that ties them to the leaderboard.
// Timed behaviour goes through a Scheduler so the engine can be driven by a
// manual clock in tests and by time.AfterFunc in the app.
