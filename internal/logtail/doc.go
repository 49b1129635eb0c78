// Package logtail reads the tail of the RelayPulse log file and styles it for
// the window's log pane.
//
// Read keeps a ring buffer of maxLines entries, so memory stays at
// O(maxLines) whatever the file size, and lines come back oldest first.
// A missing file yields nil, nil; the log may not exist before the first
// write.
//
// Colorize understands the standard library log format used by the
// application (prefix, date and time, short file name):
//
//	[relaypulse] 2026/10/19 14:32:15 poller.go:61: status poll failed: ...
//
// The prefix is dropped, the timestamp and source are dimmed, and messages
// that mention a failure are drawn in the danger color. Anything else passes
// through unchanged.
package logtail
