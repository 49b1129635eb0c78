//go:build !windows && !darwin

package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func autostartDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "autostart")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "autostart")
}

func entryPath() string {
	return filepath.Join(autostartDir(), "relaypulse.desktop")
}

func enable(binaryPath string, args []string) error {
	dir := autostartDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}

	execLine := quoteExec(binaryPath)
	for _, a := range args {
		execLine += " " + quoteExec(a)
	}

	entry := strings.Join([]string{
		"[Desktop Entry]",
		"Type=Application",
		"Name=" + appName,
		"Comment=RelayPulse status monitor",
		"Exec=" + execLine,
		"Terminal=false",
		"X-GNOME-Autostart-enabled=true",
	}, "\n")

	if err := os.WriteFile(entryPath(), []byte(entry+"\n"), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func disable() error {
	if err := os.Remove(entryPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}

func isEnabled() bool {
	_, err := os.Stat(entryPath())
	return err == nil
}

// quoteExec quotes an Exec argument per the desktop entry spec when needed.
func quoteExec(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"'\\$`") {
		return arg
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(arg) + `"`
}
