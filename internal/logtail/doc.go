// Package logtail reads the tail of the dashboard log file and renders
// zerolog JSON lines for the log pane.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory is bounded by the number of lines requested, not the file size:
//
//	lines, err := logtail.Read(cfg.LogFile, 400)
//
// A missing file is treated as empty.
//
// # Formatting
//
// Format turns one zerolog line into a single human readable line:
//
//	{"level":"warn","component":"history","status":500,"message":"history refresh failed"}
//	→ 2024-05-01 09:00:00 WARN [history] – history refresh failed status=500
//
// Extra fields are appended as sorted key=value pairs with the error last.
// Lines that are not JSON objects are returned unchanged.
package logtail
