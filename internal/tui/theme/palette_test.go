package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func darkTestTheme() *Theme {
	t := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Block:       "#112233",
		Warning:     "#888888",
	}
	t.applyDefaults()
	return t
}

func TestNewPalette_BlockShades(t *testing.T) {
	palette := NewPalette(darkTestTheme())

	got := palette.Block("#89b4fa")
	if got.Bg != lipgloss.Color(darkenColor("#89b4fa")) {
		t.Errorf("Bg = %q, want %q", got.Bg, darkenColor("#89b4fa"))
	}
	if got.BgSelected != lipgloss.Color(blendColors(darkenColor("#89b4fa"), "#ffffff", 0.30)) {
		t.Errorf("BgSelected = %q", got.BgSelected)
	}
	// Dark derived background should carry light text.
	if got.Text != lipgloss.Color("#ffffff") {
		t.Errorf("Text = %q, want light fg", got.Text)
	}
}

func TestNewPalette_BlockFallsBackOnBadHex(t *testing.T) {
	palette := NewPalette(darkTestTheme())

	want := palette.Block("#112233")
	for _, bad := range []string{"", "red", "#12345", "112233"} {
		got := palette.Block(bad)
		if got != want {
			t.Errorf("Block(%q) = %+v, want theme fallback %+v", bad, got, want)
		}
	}
}

func TestNewPalette_LightThemeBlends(t *testing.T) {
	base := &Theme{
		Bg:          "#eff1f5",
		BgHighlight: "#ccd0da",
		BgSelection: "#bcc0cc",
		Fg:          "#4c4f69",
		FgMuted:     "#9ca0b0",
		Accent:      "#8839ef",
		Block:       "#1e66f5",
		Warning:     "#d20f39",
	}
	base.applyDefaults()
	palette := NewPalette(base)

	got := palette.Block("#1e66f5")
	if got.Bg != lipgloss.Color(blendColors("#1e66f5", "#eff1f5", 0.75)) {
		t.Errorf("light Bg = %q, want blend toward bg", got.Bg)
	}
}

func TestNewPalette_NilThemeFallsBack(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Bg == "" || palette.Fg == "" {
		t.Error("expected fallback theme colors")
	}
}

func TestChooseTextColor(t *testing.T) {
	// Dark background should pick the light text.
	if got := chooseTextColor("#101010", "#ffffff", "#000000"); got != "#ffffff" {
		t.Errorf("chooseTextColor dark bg = %q, want white", got)
	}
	// Light background should pick the dark text.
	if got := chooseTextColor("#f0f0f0", "#ffffff", "#000000"); got != "#000000" {
		t.Errorf("chooseTextColor light bg = %q, want black", got)
	}
}

func TestBlendColors(t *testing.T) {
	if got := blendColors("#000000", "#ffffff", 0.5); got != "#7f7f7f" {
		t.Errorf("blendColors midpoint = %q", got)
	}
	if got := blendColors("#102030", "#ffffff", 0); got != "#102030" {
		t.Errorf("blendColors ratio 0 = %q", got)
	}
	// Malformed inputs pass through unchanged.
	if got := blendColors("nope", "#ffffff", 0.5); got != "nope" {
		t.Errorf("blendColors malformed = %q", got)
	}
}

func TestDarkenColorFloor(t *testing.T) {
	// Very dark inputs get clamped up to the minimum brightness.
	if got := darkenColor("#020202"); got != "#282828" {
		t.Errorf("darkenColor floor = %q, want #282828", got)
	}
}
