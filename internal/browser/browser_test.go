package browser

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestCommand(t *testing.T) {
	url := SiteURL + "/?a=1&b=2"
	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", url}},
		{"windows", []string{"rundll32", "url.dll,FileProtocolHandler", url}},
		{"linux", []string{"xdg-open", url}},
	}
	for _, tt := range tests {
		cmd, err := command(tt.goos, url)
		if err != nil {
			t.Fatalf("command(%s) returned error: %v", tt.goos, err)
		}
		got := append([]string{filepath.Base(cmd.Args[0])}, cmd.Args[1:]...)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("command(%s) args = %v, want %v", tt.goos, got, tt.want)
		}
	}
}

func TestCommand_Unsupported(t *testing.T) {
	if _, err := command("plan9", SiteURL); err == nil {
		t.Fatal("command(plan9) returned nil error")
	}
}
