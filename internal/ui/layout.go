package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 80
)

// Log display limits.
const (
	// LogTailLines is the number of log lines read into the log pane.
	LogTailLines = 500
)

// Interval adjustment.
const (
	// IntervalStepMS is the change applied by the +/- keys.
	IntervalStepMS uint64 = 1000

	// IntervalFloorMS is the smallest interval the window will set.
	IntervalFloorMS uint64 = 1000
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second

	// FlashDuration is how long a transient footer message stays visible.
	FlashDuration = 4 * time.Second
)

// chromeLines is the number of rows used by the header, command bar,
// summary line and footer.
const chromeLines = 4
