package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestWindow_ShowThenFocusKeepsOrder(t *testing.T) {
	w := &Window{pending: make(chan tea.Msg, pendingLimit)}

	w.Show()
	w.SetFocus()

	if _, ok := (<-w.pending).(showMsg); !ok {
		t.Fatal("first message should be showMsg")
	}
	if _, ok := (<-w.pending).(focusMsg); !ok {
		t.Fatal("second message should be focusMsg")
	}
}

func TestWindow_PostNeverBlocks(t *testing.T) {
	w := &Window{pending: make(chan tea.Msg, pendingLimit)}

	for i := 0; i < pendingLimit*3; i++ {
		w.Show()
	}

	if got := len(w.pending); got != pendingLimit {
		t.Fatalf("pending = %d, want %d", got, pendingLimit)
	}
}
