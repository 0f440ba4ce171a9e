package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which keyword and skill
	// columns are dropped from the jobs table.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width to show the next scheduled run.
	LayoutWideWidth = 120
)

// Fixed vertical space taken by chrome around the tables.
const (
	headerHeight = 1
	formHeight   = 4
	footerHeight = 1
	detailHeight = 1
)

// Log pane limits.
const (
	// LogTailLines is the number of log lines loaded into the log pane.
	LogTailLines = 400

	// LogRefreshInterval is how often the open log pane rereads the file.
	LogRefreshInterval = 2 * time.Second
)

// ClockInterval drives the next-run countdown in the header.
const ClockInterval = 30 * time.Second
