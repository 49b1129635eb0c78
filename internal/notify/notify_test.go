package notify

import (
	"errors"
	"runtime"
	"testing"
)

func TestOutage_NotifiesOncePerOutage(t *testing.T) {
	var sent []string
	o := NewOutage(func(title, message string) error {
		sent = append(sent, message)
		return nil
	})

	steps := []struct {
		offline bool
		err     error
	}{
		{false, nil},
		{false, errors.New("first failure")},
		{true, errors.New("dial tcp: connection refused")},
		{true, errors.New("still down")},
		{false, nil},
		{true, nil},
	}
	for _, s := range steps {
		if err := o.Observe(s.offline, s.err); err != nil {
			t.Fatalf("Observe returned error: %v", err)
		}
	}

	if len(sent) != 2 {
		t.Fatalf("sent %d notifications (%q), want 2", len(sent), sent)
	}
	if sent[0] != "dial tcp: connection refused" {
		t.Fatalf("first message = %q", sent[0])
	}
	if sent[1] != "The status endpoint is unreachable." {
		t.Fatalf("second message = %q", sent[1])
	}
}

func TestOutage_PropagatesSendError(t *testing.T) {
	want := errors.New("no notification daemon")
	o := NewOutage(func(string, string) error { return want })
	if err := o.Observe(true, nil); !errors.Is(err, want) {
		t.Fatalf("Observe error = %v, want %v", err, want)
	}
}

func TestSend_HeadlessIsNoop(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("display detection only applies on Linux")
	}
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	if Available() {
		t.Fatal("Available() = true without a display")
	}
	if err := Send("title", "message"); err != nil {
		t.Fatalf("Send without display = %v, want nil", err)
	}

	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	if !Available() {
		t.Fatal("Available() = false with WAYLAND_DISPLAY set")
	}
}
