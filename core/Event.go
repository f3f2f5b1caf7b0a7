package core

import "fmt"

type Side int

const (
	NoSide Side = iota
	Left
	Right
)

var sideName = map[Side]string{
	NoSide: "None",
	Left:   "Left",
	Right:  "Right",
}

func (s Side) String() string {
	return sideName[s]
}

// State of a Match. Scoring only lasts inside a single Update call.
type State int

const (
	Playing State = iota
	Scoring
	Finished
)

var stateName = map[State]string{
	Playing:  "playing",
	Scoring:  "scoring",
	Finished: "finished",
}

func (s State) String() string {
	return stateName[s]
}

type EventKind int

const (
	Scored EventKind = iota
	Won
)

// Event is emitted by Update when a point is scored or the match is won.
// The tally is always written left score first.
type Event struct {
	Kind       EventKind
	Side       Side
	LeftScore  int
	RightScore int
}

func (e Event) String() string {
	switch e.Kind {
	case Won:
		return fmt.Sprintf("%s wins! %d - %d", e.Side, e.LeftScore, e.RightScore)
	default:
		return fmt.Sprintf("%s scores! %d - %d", e.Side, e.LeftScore, e.RightScore)
	}
}
