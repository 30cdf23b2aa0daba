package core

import "testing"

func TestBBoxTranslate(t *testing.T) {
	b := BBox{Up: 0, Down: 10, Left: 0, Right: 10}

	got := b.Translate(3, -2).Translate(4, 5)
	want := b.Translate(7, 3)
	if got != want {
		t.Errorf("composed translate = %+v, expected %+v", got, want)
	}
	if got.Width() != 10 || got.Height() != 10 {
		t.Errorf("translate changed size: %fx%f", got.Width(), got.Height())
	}
}

func TestBBoxRotateCW(t *testing.T) {
	b := BBox{Up: -2, Down: 6, Left: -1, Right: 3}

	r := b.RotateCW()
	if r.Width() != b.Height() || r.Height() != b.Width() {
		t.Errorf("rotated size = %fx%f, expected %fx%f", r.Width(), r.Height(), b.Height(), b.Width())
	}

	full := b.RotateCW().RotateCW().RotateCW().RotateCW()
	if full != b {
		t.Errorf("four rotations = %+v, expected %+v", full, b)
	}
}

func TestIntersect(t *testing.T) {
	ref := BBox{Up: 0, Down: 10, Left: 0, Right: 10}

	tests := []struct {
		name     string
		other    BBox
		hit      bool
		xOverlap float64
		yOverlap float64
	}{
		{"covers right side", BBox{Up: 2, Down: 8, Left: 7, Right: 17}, true, 3, 8},
		{"covers left side", BBox{Up: 2, Down: 8, Left: -6, Right: 4}, true, -4, 8},
		{"covers bottom side", BBox{Up: 8, Down: 18, Left: 0, Right: 10}, true, 10, 2},
		{"covers top side", BBox{Up: -5, Down: 1, Left: 0, Right: 10}, true, 10, -1},
		{"touching edge", BBox{Up: 0, Down: 10, Left: 10, Right: 20}, true, 0, 10},
		{"disjoint right", BBox{Up: 0, Down: 10, Left: 11, Right: 20}, false, 0, 0},
		{"disjoint below", BBox{Up: 12, Down: 20, Left: 0, Right: 10}, false, 0, 0},
		{"disjoint above", BBox{Up: -20, Down: -1, Left: 0, Right: 10}, false, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, hit := Intersect(ref, tc.other)
			if hit != tc.hit {
				t.Fatalf("Intersect hit = %v, expected %v", hit, tc.hit)
			}
			if !hit {
				return
			}
			if o.XOverlap != tc.xOverlap || o.YOverlap != tc.yOverlap {
				t.Errorf("overlap = (%f, %f), expected (%f, %f)", o.XOverlap, o.YOverlap, tc.xOverlap, tc.yOverlap)
			}
			if o.XRelative != tc.other.Left || o.YRelative != tc.other.Up {
				t.Errorf("relative = (%f, %f), expected (%f, %f)", o.XRelative, o.YRelative, tc.other.Left, tc.other.Up)
			}
		})
	}
}

func TestIntersectSymmetry(t *testing.T) {
	a := BBox{Up: 0, Down: 10, Left: 0, Right: 10}
	partial := []BBox{
		{Up: 5, Down: 15, Left: 5, Right: 15},
		{Up: -4, Down: 6, Left: 3, Right: 13},
		{Up: 6, Down: 16, Left: -7, Right: 3},
	}

	for _, b := range partial {
		ab, ok1 := Intersect(a, b)
		ba, ok2 := Intersect(b, a)
		if !ok1 || !ok2 {
			t.Fatalf("expected overlap both ways for %+v", b)
		}
		if ab.XOverlap != -ba.XOverlap || ab.YOverlap != -ba.YOverlap {
			t.Errorf("asymmetric overlap for %+v: %+v vs %+v", b, ab, ba)
		}
	}

	// Containment is not symmetric: depth is capped by the reference box's
	// own extent, so the outer box sees the shorter exit side while the
	// inner box is covered completely.
	contained := BBox{Up: 2, Down: 4, Left: 2, Right: 4}
	outer, ok1 := Intersect(a, contained)
	inner, ok2 := Intersect(contained, a)
	if !ok1 || !ok2 {
		t.Fatal("containment should overlap both ways")
	}
	if outer.XOverlap != -4 || outer.YOverlap != -4 {
		t.Errorf("outer overlap = (%f, %f), expected (-4, -4)", outer.XOverlap, outer.YOverlap)
	}
	if inner.XOverlap != 2 || inner.YOverlap != 2 {
		t.Errorf("inner overlap = (%f, %f), expected (2, 2)", inner.XOverlap, inner.YOverlap)
	}
}

func TestOverlapDot(t *testing.T) {
	o := Overlap{XOverlap: -5, YOverlap: 3}

	if got := o.Dot(-1, 0); got != 5 {
		t.Errorf("Dot(-1, 0) = %f, expected 5", got)
	}
	if got := o.Dot(0, 1); got != 3 {
		t.Errorf("Dot(0, 1) = %f, expected 3", got)
	}
	if got := o.Dot(1, 1); got != -2 {
		t.Errorf("Dot(1, 1) = %f, expected -2", got)
	}
}
