// Package ui implements the lookout operator dashboard on Bubble Tea.
//
// The screen is a single page: a status header, the search form with its
// action bar, the jobs table (hidden until a search returns rows), a detail
// line for the selected job, the automated run history and a key hint footer.
// Help, the log pane and notices are full-screen overlays; a pending notice
// takes precedence and swallows every key except dismiss and quit.
//
// All state changes go through Model.Update. Backend work is delegated to
// dashboard.Dashboard, whose commands run off the event loop and report back
// as messages that the model routes to Dashboard.Update. The model only keeps
// presentation state: focus, selected rows, the theme and overlay flags.
//
// Files:
//
//   - app.go: Model, key routing, focus and Run
//   - header.go, search.go, table.go, detail.go: main screen sections
//   - modal.go, help.go, logs.go: overlays and the footer
//   - theme.go, style_helpers.go, strings.go, layout.go: styling helpers
package ui
