// Package app is the composition root for RelayPulse.
//
// Run loads the configuration, sets up file logging, seeds the poll interval
// from the saved preferences, and starts three things that share state:
//
//   - the Poller, which fetches the status report through the command facade,
//     publishes every outcome on a state.Board and then sleeps for the current
//     interval (never less than min_poll_interval)
//   - a preferences watcher, so "relaypulse interval set" reaches a running
//     instance
//   - the window, and the tray icon when the build has one
//
// The tray loop runs on the calling goroutine because some platforms require
// it. Quitting from the tray exits the process with status 0; closing the
// window or cancelling the context stops the tray and returns from Run.
//
// Poll failures are logged and shown in the window; they never stop the
// poller. Only configuration errors are returned from Run.
package app
