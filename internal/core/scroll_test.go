package core

import "testing"

func TestClampOffset(t *testing.T) {
	tests := []struct {
		offset, content, viewport, want int
	}{
		{5, 100, 20, 5},
		{-3, 100, 20, 0},
		{95, 100, 20, 80},
		{4, 10, 20, 0},
	}
	for _, tt := range tests {
		if got := ClampOffset(tt.offset, tt.content, tt.viewport); got != tt.want {
			t.Errorf("ClampOffset(%d, %d, %d) = %d, want %d", tt.offset, tt.content, tt.viewport, got, tt.want)
		}
	}
}

func TestScrollStepReachesTarget(t *testing.T) {
	for _, tc := range [][2]int{{0, 999}, {999, 0}, {10, 11}, {5, 5}} {
		cur, target := tc[0], tc[1]
		for i := 0; i < 100 && cur != target; i++ {
			next := ScrollStep(cur, target)
			if (target > cur && next > target) || (target < cur && next < target) {
				t.Fatalf("ScrollStep(%d, %d) overshot to %d", cur, target, next)
			}
			cur = next
		}
		if cur != target {
			t.Errorf("did not reach %d from %d, stopped at %d", target, tc[0], cur)
		}
	}
}
