package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventWalkStart     EventType = "walk_start"
	EventStepChosen    EventType = "step_chosen"
	EventSubstitution  EventType = "substitution"
	EventChordRendered EventType = "chord_rendered"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// WalkEvent marks the start of a walk over the net.
type WalkEvent struct {
	EventBase
	Max int `json:"max"`
}

// StepEvent reports one chosen position of the walk.
type StepEvent struct {
	EventBase
	Position int `json:"position"`
	Vertex   int `json:"vertex"`
}

// SubstitutionEvent reports one substitution decision that had an effect:
// either a quality change or a tritone marking.
type SubstitutionEvent struct {
	EventBase
	Vertex  int    `json:"vertex"`
	From    string `json:"from"`
	To      string `json:"to"`
	Tritone bool   `json:"tritone"`
}

// ChordEvent reports one rendered chord.
type ChordEvent struct {
	EventBase
	Position int    `json:"position"`
	Chord    Chord  `json:"chord"`
}

// LifecycleHooks defines callbacks for engine observability. All hooks are
// optional and purely diagnostic: they never influence the generated
// progression. Hooks must not panic.
type LifecycleHooks struct {
	OnWalkStart     func(context.Context, *WalkEvent)
	OnStepChosen    func(context.Context, *StepEvent)
	OnSubstitution  func(context.Context, *SubstitutionEvent)
	OnChordRendered func(context.Context, *ChordEvent)
}
