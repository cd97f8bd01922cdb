package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestBlend(t *testing.T) {
	from, to := lipgloss.Color("#000000"), lipgloss.Color("#ffffff")

	if got := Blend(0, from, to); got != nil {
		t.Errorf("Blend(0) = %v, want nil", got)
	}
	if got := Blend(1, from, to); len(got) != 1 || got[0] != from {
		t.Errorf("Blend(1) = %v, want [from]", got)
	}

	got := Blend(5, from, to)
	if len(got) != 5 {
		t.Fatalf("Blend(5) returned %d colours", len(got))
	}
	if got[0] != "#000000" || got[4] != "#ffffff" {
		t.Errorf("endpoints = %s, %s", got[0], got[4])
	}
}

func TestBlend_ANSIFallsBackToGrey(t *testing.T) {
	got := Blend(2, lipgloss.Color("240"), lipgloss.Color("240"))
	if got[0] != "#808080" {
		t.Errorf("ANSI colour blended to %s, want #808080", got[0])
	}
}

func TestGradient_KeepsText(t *testing.T) {
	text := "comrad ♪"
	out := Gradient(text, true, T().Primary, T().Secondary)

	if plain := ansi.Strip(out); plain != text {
		t.Errorf("stripped gradient = %q, want %q", plain, text)
	}
	if Gradient("", false, T().Primary, T().Secondary) != "" {
		t.Error("empty text should render empty")
	}
}

func TestPanelStyle(t *testing.T) {
	focused := T().PanelStyle(true).Render("x")
	plain := T().PanelStyle(false).Render("x")

	if !strings.Contains(ansi.Strip(focused), "x") {
		t.Error("panel lost its content")
	}
	if lipgloss.Width(focused) != lipgloss.Width(plain) {
		t.Error("focus should not change the panel size")
	}
}
