package input

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrBadScript is returned for malformed replay scripts.
var ErrBadScript = errors.New("bad input script")

// scriptEntry is one timed line of a replay script.
type scriptEntry struct {
	At      string    `yaml:"at"`
	Down    []string  `yaml:"down"`
	Up      []string  `yaml:"up"`
	Move    []float32 `yaml:"move"`
	Press   bool      `yaml:"press"`
	Release bool      `yaml:"release"`
	Resize  []float32 `yaml:"resize"`
	Quit    bool      `yaml:"quit"`
}

type timedEvent struct {
	at    time.Duration
	event Event
}

// Replay yields scripted events as their time arrives.
type Replay struct {
	events []timedEvent
	next   int
}

// LoadScript reads and parses a replay script file.
func LoadScript(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	r, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// ParseScript parses a YAML replay script. Entries may appear in any order;
// events at the same time keep their script order.
func ParseScript(data []byte) (*Replay, error) {
	var entries []scriptEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScript, err)
	}

	r := &Replay{}
	for i, entry := range entries {
		at, err := time.ParseDuration(entry.At)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: at %q: %v", ErrBadScript, i, entry.At, err)
		}
		if at < 0 {
			return nil, fmt.Errorf("%w: entry %d: negative time", ErrBadScript, i)
		}

		add := func(e Event) {
			r.events = append(r.events, timedEvent{at: at, event: e})
		}

		if entry.Move != nil {
			if len(entry.Move) != 2 {
				return nil, fmt.Errorf("%w: entry %d: move needs [x, y]", ErrBadScript, i)
			}
			add(Event{Type: EventMouseMove, X: entry.Move[0], Y: entry.Move[1]})
		}
		if entry.Resize != nil {
			if len(entry.Resize) != 2 {
				return nil, fmt.Errorf("%w: entry %d: resize needs [w, h]", ErrBadScript, i)
			}
			add(Event{Type: EventResize, X: entry.Resize[0], Y: entry.Resize[1]})
		}
		if entry.Press {
			add(Event{Type: EventMouseDown})
		}
		for _, name := range entry.Down {
			k, ok := ParseKey(name)
			if !ok {
				return nil, fmt.Errorf("%w: entry %d: unknown key %q", ErrBadScript, i, name)
			}
			add(Event{Type: EventKeyDown, Key: k})
		}
		for _, name := range entry.Up {
			k, ok := ParseKey(name)
			if !ok {
				return nil, fmt.Errorf("%w: entry %d: unknown key %q", ErrBadScript, i, name)
			}
			add(Event{Type: EventKeyUp, Key: k})
		}
		if entry.Release {
			add(Event{Type: EventMouseUp})
		}
		if entry.Quit {
			add(Event{Type: EventQuit})
		}
	}

	sort.SliceStable(r.events, func(a, b int) bool {
		return r.events[a].at < r.events[b].at
	})
	return r, nil
}

// Due returns the events scheduled at or before now that have not been
// returned yet.
func (r *Replay) Due(now time.Duration) []Event {
	var out []Event
	for r.next < len(r.events) && r.events[r.next].at <= now {
		out = append(out, r.events[r.next].event)
		r.next++
	}
	return out
}

// Done reports whether every event has been delivered.
func (r *Replay) Done() bool {
	return r.next >= len(r.events)
}

// Len returns the number of scripted events.
func (r *Replay) Len() int {
	return len(r.events)
}
