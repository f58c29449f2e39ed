package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/elizacamber/composeplayground/internal/core"
)

func TestComposeCanvas(t *testing.T) {
	blocks := []string{"aa", "bbb", "c"}
	l, err := core.LayoutRows(2, MeasureBlocks(blocks), core.Loose(core.Unbounded, core.Unbounded))
	if err != nil {
		t.Fatal(err)
	}
	got := ComposeCanvas(l, blocks)
	want := []string{"aac", "bbb"}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("ComposeCanvas() = %q, want %q", got, want)
	}
}

func TestComposeCanvas_TallBlocks(t *testing.T) {
	blocks := []string{"x\nx", "yy", "z"}
	l, err := core.LayoutRows(2, MeasureBlocks(blocks), core.Loose(core.Unbounded, core.Unbounded))
	if err != nil {
		t.Fatal(err)
	}
	// row 0 holds blocks 0 and 2 and is two lines tall
	got := ComposeCanvas(l, blocks)
	want := []string{"xz", "x", "yy"}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("ComposeCanvas() = %q, want %q", got, want)
	}
}

func TestComposeCanvas_CutAtContainerEdge(t *testing.T) {
	blocks := []string{"abcd", "ef"}
	l, err := core.LayoutRows(1, MeasureBlocks(blocks), core.Constraints{MaxWidth: 4, MaxHeight: core.Unbounded})
	if err != nil {
		t.Fatal(err)
	}
	got := ComposeCanvas(l, blocks)
	if len(got) != 1 || got[0] != "abcd" {
		t.Errorf("ComposeCanvas() = %q, want [abcd]", got)
	}
}

func TestRenderChip(t *testing.T) {
	chip := ansi.Strip(RenderChip("Books", 1))
	if !strings.Contains(chip, "■ Books") {
		t.Errorf("Expected chip label, got:\n%s", chip)
	}
	lines := strings.Split(chip, "\n")
	if len(lines) != 3 {
		t.Errorf("Expected a bordered chip of 3 lines, got %d", len(lines))
	}
}

func TestFormatStaggerInfo(t *testing.T) {
	l := core.StaggeredLayout{
		Width: 50,
		Rows:  []core.RowMetrics{{Children: []int{0, 2}}, {Children: []int{1}}},
	}
	if got := formatStaggerInfo(l, 0, 80); got != "▪▪ ▪ " {
		t.Errorf("formatStaggerInfo() = %q", got)
	}
	if got := formatStaggerInfo(l, 4, 40); got != "▪▪ ▪ ◀ 4/10 ▶" {
		t.Errorf("formatStaggerInfo() = %q", got)
	}
}
