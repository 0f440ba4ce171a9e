// Package dashboard holds the operator-facing state of the job search
// dashboard and the commands that drive the backend.
//
// # Overview
//
// A Dashboard owns four components that share one jobsearch.Gateway:
//
//   - StatusMonitor: one-shot health check shown in the header
//   - SearchController: query and location fields plus the live job list
//   - AutomationTrigger: run-now and test notification requests
//   - HistoryStore: past automated runs, reloaded after a manual run
//
// # Concurrency Model
//
// Every method is meant to be called from a single Bubble Tea Update loop.
// Remote calls are returned as tea.Cmd values; Bubble Tea runs them on their
// own goroutines and feeds the result messages back through Update. The
// components therefore need no locks.
//
//	operation()  ─> tea.Cmd ─> gateway call ─> result msg
//	                                              │
//	Dashboard.Update(msg) <───────────────────────┘
//	     └─> owning component applies the result
//
// # Busy Tracking
//
// Search, run-now and test notification acquire a Token from the
// Coordinator before issuing their request and release exactly that token
// when the result arrives, success or failure. A second acquisition while
// any token is outstanding is refused and the operation returns a nil
// command.
//
// # Stale Responses
//
// Status, search and history requests carry a sequence number from the
// Sequencer. A result whose number is no longer the latest for its kind is
// dropped, so a slow early response can never overwrite a newer one.
//
// # Events
//
// When a manual run succeeds the trigger publishes EventManualRunCompleted
// on the Bus. HistoryStore subscribes at construction and answers with one
// refresh. A failed run publishes nothing.
//
// # Notices
//
// Failures of user-initiated operations and the success of side-effect
// operations queue a Notice. The view shows the oldest notice until the
// operator dismisses it. History refresh failures are logged only.
package dashboard
