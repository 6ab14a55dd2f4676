package buffer

import "testing"

func TestComparePos(t *testing.T) {
	cases := []struct {
		a, b Pos
		want int
	}{
		{a: Pos{0, 0}, b: Pos{0, 0}, want: 0},
		{a: Pos{0, 1}, b: Pos{0, 2}, want: -1},
		{a: Pos{1, 0}, b: Pos{0, 9}, want: 1},
		{a: Pos{2, 3}, b: Pos{2, 1}, want: 1},
	}
	for _, tc := range cases {
		if got := ComparePos(tc.a, tc.b); got != tc.want {
			t.Fatalf("ComparePos(%v,%v): got %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalizeRange_SwapsReversed(t *testing.T) {
	r := NormalizeRange(Range{Start: Pos{1, 2}, End: Pos{0, 1}})
	if r.Start != (Pos{0, 1}) || r.End != (Pos{1, 2}) {
		t.Fatalf("normalized: got %v, want [(0,1),(1,2))", r)
	}
}

func TestClampPos(t *testing.T) {
	lens := []int{2, 0, 5}
	lineLen := func(row int) int { return lens[row] }

	if got := ClampPos(Pos{Row: -1, Col: -1}, 3, lineLen); got != (Pos{0, 0}) {
		t.Fatalf("clamp negative: got %v", got)
	}
	if got := ClampPos(Pos{Row: 9, Col: 9}, 3, lineLen); got != (Pos{2, 5}) {
		t.Fatalf("clamp past end: got %v", got)
	}
	if got := ClampPos(Pos{Row: 1, Col: 3}, 3, lineLen); got != (Pos{1, 0}) {
		t.Fatalf("clamp empty line: got %v", got)
	}
	if got := ClampPos(Pos{Row: 4, Col: 4}, 0, nil); got != (Pos{0, 0}) {
		t.Fatalf("clamp empty doc: got %v", got)
	}
}
