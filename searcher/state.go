package searcher

// PlayerID tells the search which side a state's mover plays for.
type PlayerID uint8

const (
	MaxPlayer PlayerID = iota // the first mover, maximizing
	MinPlayer                 // the second mover, minimizing
)

// State is the capability contract a game exposes to the search. A
// State is an immutable snapshot: expanding it must never mutate it.
type State interface {
	// Fingerprint summarizes the position for transposition lookups.
	// Equal fingerprints are treated as equal positions; collisions
	// only cost cached-value reuse, never correctness of the game
	// itself.
	Fingerprint() uint64
	Player() PlayerID
	IsTerminal() bool
}

// Generator expands a state into its successor states, one per legal
// move, each carrying the action that produced it. Terminal states
// expand to nothing.
type Generator interface {
	Successors(state State) []State
}

// Evaluator statically scores a state from the maximizing player's
// perspective. Terminal states score the fixed win magnitudes.
type Evaluator interface {
	Evaluate(state State) float64
	MaxWinsValue() float64
	MinWinsValue() float64
}
