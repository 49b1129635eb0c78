// Package autostart registers RelayPulse to launch when the user logs in.
package autostart

const appName = "RelayPulse"

// Enable registers binaryPath (with args) to start at login for the current
// user, replacing any earlier registration.
func Enable(binaryPath string, args ...string) error {
	return enable(binaryPath, args)
}

// Disable removes the login registration. Removing a missing registration
// is not an error.
func Disable() error {
	return disable()
}

// IsEnabled returns whether a login registration currently exists.
func IsEnabled() bool {
	return isEnabled()
}
