// Package ui provides the RelayPulse window, a Bubble Tea terminal program.
//
// The window is read-mostly: it renders the latest poll outcome published on
// a state.Board and the current poll interval. The few actions it offers go
// through the command facade (interval changes) or the app layer (refresh).
//
// # Layout
//
//   - Header: logo, endpoint status (ONLINE, OFFLINE, TIMEOUT, ERROR), poll
//     interval and the time of the last poll
//   - Command bar: the most used keys
//   - Main pane: the report as indented JSON, or the last error; "l" swaps in
//     a tail of the application log
//   - Footer: short help, or a transient message after an action
//
// # Tray integration
//
// Window implements the tray's window contract. Show and SetFocus queue a
// message for the program and return at once, so the tray's event loop is
// never held up by rendering. When a tray icon is present the window can be
// hidden with "x"; it then draws a single line until shown again.
//
// # Themes
//
// Three palettes are available (Nightfox, Kanagawa, Slate). "T" cycles them
// and the choice is saved to the preferences file.
package ui
