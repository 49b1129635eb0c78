package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Palette holds the colors used by Colorize.
type Palette struct {
	Timestamp string
	Source    string
	Text      string
	Danger    string
}

// logLine matches "[relaypulse] 2006/01/02 15:04:05 file.go:12: message".
var logLine = regexp.MustCompile(`^(\[[^\]]+\] )?(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}) (\S+\.go:\d+: )?(.*)$`)

// Colorize styles one log line. Lines that do not look like log output are
// returned unchanged.
func Colorize(line string, p Palette) string {
	m := logLine.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	ts := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Timestamp))
	src := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Source))
	msg := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text))
	if isFailure(m[4]) {
		msg = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Danger)).Bold(true)
	}

	var b strings.Builder
	b.WriteString(ts.Render(m[2]))
	b.WriteString(" ")
	if m[3] != "" {
		b.WriteString(src.Render(strings.TrimSuffix(m[3], ": ")))
		b.WriteString(" ")
	}
	b.WriteString(msg.Render(m[4]))
	return b.String()
}

// ColorizeLines styles each line with Colorize.
func ColorizeLines(lines []string, p Palette) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Colorize(line, p)
	}
	return out
}

func isFailure(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "failed") || strings.Contains(lower, "error")
}
