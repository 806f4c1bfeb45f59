// Package input turns platform-neutral input events into per-frame snapshots.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Key is a logical control, not a physical scancode.
type Key int

const (
	KeyNone Key = iota
	KeyForward
	KeyBack
	KeyLeft
	KeyRight
	KeyLookUp
	KeyLookDown
	KeyLookLeft
	KeyLookRight
	KeyTogglePOV
	KeyToggleMouseLook
	KeyBoost
	KeyQuit
)

var keyNames = map[Key]string{
	KeyForward:         "forward",
	KeyBack:            "back",
	KeyLeft:            "left",
	KeyRight:           "right",
	KeyLookUp:          "look_up",
	KeyLookDown:        "look_down",
	KeyLookLeft:        "look_left",
	KeyLookRight:       "look_right",
	KeyTogglePOV:       "toggle_pov",
	KeyToggleMouseLook: "toggle_mouse_look",
	KeyBoost:           "boost",
	KeyQuit:            "quit",
}

// Physical key aliases accepted by ParseKey.
var keyAliases = map[string]Key{
	"w":      KeyForward,
	"s":      KeyBack,
	"a":      KeyLeft,
	"d":      KeyRight,
	"up":     KeyLookUp,
	"down":   KeyLookDown,
	"p":      KeyTogglePOV,
	"m":      KeyToggleMouseLook,
	"b":      KeyBoost,
	"escape": KeyQuit,
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}

// ParseKey resolves a logical key name or a physical alias.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	k, ok := keyAliases[name]
	return k, ok
}

// EventType identifies the kind of Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event is a processed input event. X and Y carry the cursor position for
// EventMouseMove and the new size for EventResize.
type Event struct {
	Type EventType
	Key  Key
	X    float32
	Y    float32
}

// Snapshot is the input state handed to the simulation once per frame.
type Snapshot struct {
	Held       map[Key]bool
	Drag       bool
	Cursor     mgl32.Vec2
	MouseDelta mgl32.Vec2

	// Edges, true only on the frame the key went down.
	TogglePOV       bool
	ToggleMouseLook bool
	Boost           bool
	Quit            bool

	Width  int
	Height int
}

// Pressed reports whether key is currently held.
func (s Snapshot) Pressed(key Key) bool {
	return s.Held[key]
}

// WithoutEdges returns a copy with the one-shot edges and mouse delta cleared,
// for steps after the first within a frame.
func (s Snapshot) WithoutEdges() Snapshot {
	s.TogglePOV = false
	s.ToggleMouseLook = false
	s.Boost = false
	s.MouseDelta = mgl32.Vec2{}
	return s
}

// Merge returns next with the edges and mouse delta of s folded in, for
// carrying input across frames that ran no simulation step.
func (s Snapshot) Merge(next Snapshot) Snapshot {
	next.TogglePOV = next.TogglePOV || s.TogglePOV
	next.ToggleMouseLook = next.ToggleMouseLook || s.ToggleMouseLook
	next.Boost = next.Boost || s.Boost
	next.Quit = next.Quit || s.Quit
	next.MouseDelta = next.MouseDelta.Add(s.MouseDelta)
	return next
}

// Tracker accumulates events between frames.
type Tracker struct {
	held      map[Key]bool
	drag      bool
	cursor    mgl32.Vec2
	hasCursor bool
	delta     mgl32.Vec2
	edges     map[Key]bool
	quit      bool
	width     int
	height    int
}

// NewTracker creates a tracker for a viewport of the given size.
func NewTracker(width, height int) *Tracker {
	return &Tracker{
		held:   make(map[Key]bool),
		edges:  make(map[Key]bool),
		width:  width,
		height: height,
	}
}

// Apply folds one event into the tracker.
func (t *Tracker) Apply(e Event) {
	switch e.Type {
	case EventQuit:
		t.quit = true

	case EventResize:
		t.width = int(e.X)
		t.height = int(e.Y)

	case EventKeyDown:
		if !t.held[e.Key] {
			t.edges[e.Key] = true
		}
		t.held[e.Key] = true
		if e.Key == KeyQuit {
			t.quit = true
		}

	case EventKeyUp:
		delete(t.held, e.Key)

	case EventMouseMove:
		pos := mgl32.Vec2{e.X, e.Y}
		// The first move only seeds the cursor.
		if t.hasCursor {
			t.delta = t.delta.Add(pos.Sub(t.cursor))
		}
		t.cursor = pos
		t.hasCursor = true

	case EventMouseDown:
		t.drag = true

	case EventMouseUp:
		t.drag = false
	}
}

// ApplyAll applies events in order.
func (t *Tracker) ApplyAll(events []Event) {
	for _, e := range events {
		t.Apply(e)
	}
}

// Snapshot returns the current state and resets per-frame edges and the
// accumulated mouse delta.
func (t *Tracker) Snapshot() Snapshot {
	held := make(map[Key]bool, len(t.held))
	for k, v := range t.held {
		held[k] = v
	}

	s := Snapshot{
		Held:            held,
		Drag:            t.drag,
		Cursor:          t.cursor,
		MouseDelta:      t.delta,
		TogglePOV:       t.edges[KeyTogglePOV],
		ToggleMouseLook: t.edges[KeyToggleMouseLook],
		Boost:           t.edges[KeyBoost],
		Quit:            t.quit,
		Width:           t.width,
		Height:          t.height,
	}

	t.delta = mgl32.Vec2{}
	clear(t.edges)
	return s
}
