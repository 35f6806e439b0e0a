package core

// GameState represents the current state of a round.
// Returned by Round.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the round is paused
}

// StepResult is returned by Round.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Picked bool // A bonus was consumed this tick
}
