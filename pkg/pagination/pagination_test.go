package pagination

import "testing"

func TestNormalizePageSize(t *testing.T) {
	t.Parallel()

	if got := NormalizePageSize(0); got != DefaultPageSize {
		t.Fatalf("expected default for 0, got %d", got)
	}
	if got := NormalizePageSize(-3); got != DefaultPageSize {
		t.Fatalf("expected default for negative, got %d", got)
	}
	if got := NormalizePageSize(500); got != MaxPageSize {
		t.Fatalf("expected cap, got %d", got)
	}
	if got := NormalizePageSize(24); got != 24 {
		t.Fatalf("expected passthrough, got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		count, size, want int
	}{
		{0, 12, 1},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{25, 12, 3},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.count, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d,%d)=%d, want %d", tc.count, tc.size, got, tc.want)
		}
	}
}

func TestResolvePageClamps(t *testing.T) {
	t.Parallel()

	if got := ResolvePage(0, 3); got != 1 {
		t.Fatalf("expected floor 1, got %d", got)
	}
	if got := ResolvePage(99, 3); got != 3 {
		t.Fatalf("expected clamp to 3, got %d", got)
	}
	if got := ResolvePage(2, 3); got != 2 {
		t.Fatalf("expected passthrough, got %d", got)
	}
}

func TestBoundsNeverExceedCount(t *testing.T) {
	t.Parallel()

	start, end := Bounds(3, 12, 25)
	if start != 24 || end != 25 {
		t.Fatalf("unexpected bounds [%d,%d)", start, end)
	}
	start, end = Bounds(1, 12, 0)
	if start != 0 || end != 0 {
		t.Fatalf("unexpected bounds for empty set [%d,%d)", start, end)
	}
}
