package ui

import "testing"

func TestNextThemeCycles(t *testing.T) {
	name := themeOrder[0]
	seen := map[string]bool{}
	for range themeOrder {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themeOrder[0] {
		t.Fatalf("cycle did not return to %q, got %q", themeOrder[0], name)
	}
	if len(seen) != len(themeOrder) {
		t.Fatalf("visited %d themes, want %d", len(seen), len(themeOrder))
	}
	if got := NextTheme("Dracula"); got != themeOrder[0] {
		t.Fatalf("unknown theme should restart the cycle, got %q", got)
	}
}

func TestGetThemeFallback(t *testing.T) {
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(missing) = %q, want Nightfox", got)
	}
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
}

func TestThemeStatusColors(t *testing.T) {
	th := GetTheme("Slate")
	colors := th.statusColors()
	if colors["online"] != th.Success {
		t.Fatalf("online = %q, want %q", colors["online"], th.Success)
	}
	if colors["offline"] != th.Danger {
		t.Fatalf("offline = %q, want %q", colors["offline"], th.Danger)
	}

	// Unknown labels fall back to the muted color without panicking.
	_ = th.Styles().StatusStyle("SOMETHING ELSE").Render("x")
	_ = th.Styles().WithBackground(th.Surface).StatusStyle("ONLINE").Render("x")
}

func TestThemeLogPalette(t *testing.T) {
	th := GetTheme("Kanagawa")
	p := th.LogPalette()
	if p.Danger != th.Danger || p.Text != th.Text {
		t.Fatalf("palette %+v does not follow theme colors", p)
	}
}
