package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EventKind identifies a dashboard event.
type EventKind int

const (
	// EventManualRunCompleted fires after the backend confirms a manual run.
	EventManualRunCompleted EventKind = iota
)

// Event is published by one component and consumed by subscribers that own
// other state.
type Event struct {
	Kind EventKind
	At   time.Time
}

// Handler reacts to an event. It may return a command to run.
type Handler func(Event) tea.Cmd

// Bus is a synchronous in-process publish/subscribe hub. Handlers run inside
// Update, in subscription order.
type Bus struct {
	subs map[EventKind][]Handler
}

// Subscribe registers h for events of kind.
func (b *Bus) Subscribe(kind EventKind, h Handler) {
	if h == nil {
		return
	}
	if b.subs == nil {
		b.subs = make(map[EventKind][]Handler)
	}
	b.subs[kind] = append(b.subs[kind], h)
}

// Publish delivers e to every subscriber and batches their commands.
func (b *Bus) Publish(e Event) tea.Cmd {
	handlers := b.subs[e.Kind]
	if len(handlers) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(handlers))
	for _, h := range handlers {
		cmds = append(cmds, h(e))
	}
	return tea.Batch(cmds...)
}
