// Package config loads the RelayPulse host configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/relaypulse/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Configuration Fields
//
//	log_dir           = "~/.local/share/relaypulse"  # relaypulse.log lives here
//	request_timeout   = ""                           # e.g. "10s"; empty = no timeout
//	notify_offline    = true                         # desktop notification on outage
//	min_poll_interval = "1s"                         # floor applied by the poller
//
// The status endpoint is fixed and cannot be configured.
//
// # Error Handling
//
//   - Missing file: defaults, no error
//   - Unreadable file: "open config" / "read config" errors
//   - Invalid TOML or bad durations: "parse config" errors
package config
