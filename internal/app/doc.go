// Package app is the composition root for lookout.
//
// Setup resolves configuration (file, then environment, then flags), opens
// the zerolog log file and builds the job-search API client. The headless
// commands use the resulting Env directly; Run additionally wires the
// dashboard components and the automation schedule into the Bubble Tea UI
// and blocks until the user quits.
//
// Only configuration and log file errors are fatal. An unusable API URL
// still yields a client whose calls all fail, so the dashboard starts and
// reports "System Error" instead of refusing to run.
package app
