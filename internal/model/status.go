package model

// SessionStatus represents the lifecycle state of a game session
type SessionStatus string

const (
	// SessionStatusIdle means no game has been started yet
	SessionStatusIdle SessionStatus = "Idle"

	// SessionStatusCountdown means the grid is shuffled and the start delay is pending
	SessionStatusCountdown SessionStatus = "Countdown"

	// SessionStatusRunning means the stopwatch is running and clicks are accepted
	SessionStatusRunning SessionStatus = "Running"

	// SessionStatusFinished means all 25 cells were clicked in order
	SessionStatusFinished SessionStatus = "Finished"
)

// String returns the string representation of SessionStatus
func (s SessionStatus) String() string {
	return string(s)
}

// IsActive returns true while a game is in progress (countdown or running)
func (s SessionStatus) IsActive() bool {
	return s == SessionStatusCountdown || s == SessionStatusRunning
}

// AcceptsClicks returns true if grid clicks should be validated
func (s SessionStatus) AcceptsClicks() bool {
	return s == SessionStatusRunning
}
