package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Kind names a remote operation. Busy tokens and response sequences are keyed
// by kind.
type Kind string

const (
	KindStatus           Kind = "status"
	KindSearch           Kind = "search"
	KindHistory          Kind = "history"
	KindRunNow           Kind = "run-now"
	KindTestNotification Kind = "test-notification"
)

var busyLabels = map[Kind]string{
	KindSearch:           "Searching jobs...",
	KindRunNow:           "Running automation cycle...",
	KindTestNotification: "Sending test email...",
}

// Token is one outstanding busy acquisition.
type Token struct {
	ID      uuid.UUID
	Kind    Kind
	Started time.Time
}

// Coordinator tracks user-initiated operations that block new actions.
// Each acquisition gets its own token, so settling one operation can never
// clear the busy state of another. The zero value is ready to use.
type Coordinator struct {
	active map[uuid.UUID]Token
	now    func() time.Time
}

// NewCoordinator returns an empty coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{active: make(map[uuid.UUID]Token)}
}

// Busy reports whether any operation is outstanding.
func (c *Coordinator) Busy() bool {
	return len(c.active) > 0
}

// Acquire issues a token for kind. It refuses while another operation is
// outstanding.
func (c *Coordinator) Acquire(kind Kind) (Token, bool) {
	if c.Busy() {
		return Token{}, false
	}
	if c.active == nil {
		c.active = make(map[uuid.UUID]Token)
	}
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	tok := Token{ID: uuid.New(), Kind: kind, Started: now()}
	c.active[tok.ID] = tok
	return tok, true
}

// Release settles tok. Unknown or already released tokens are ignored; the
// return value reports whether tok was outstanding.
func (c *Coordinator) Release(tok Token) bool {
	if _, ok := c.active[tok.ID]; !ok {
		return false
	}
	delete(c.active, tok.ID)
	return true
}

// Outstanding returns the active tokens, oldest first.
func (c *Coordinator) Outstanding() []Token {
	out := make([]Token, 0, len(c.active))
	for _, tok := range c.active {
		out = append(out, tok)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Started.Before(out[j].Started)
	})
	return out
}

// Label describes the oldest outstanding operation for the progress indicator.
func (c *Coordinator) Label() string {
	toks := c.Outstanding()
	if len(toks) == 0 {
		return ""
	}
	if label, ok := busyLabels[toks[0].Kind]; ok {
		return label
	}
	return "Working..."
}
