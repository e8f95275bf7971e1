package graphics

import (
	"math"
	"testing"
)

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Right != 40 || r.Bottom != 60 {
		t.Errorf("expected right 40 bottom 60, got %v %v", r.Right, r.Bottom)
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("expected 30x40, got %vx%v", r.Width(), r.Height())
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)
	cases := []struct {
		p    Offset
		want bool
	}{
		{Offset{X: 5, Y: 5}, true},
		{Offset{X: 0, Y: 0}, true},
		{Offset{X: 10, Y: 10}, true},
		{Offset{X: 11, Y: 5}, false},
		{Offset{X: -1, Y: 5}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRect_Union(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	u := a.Union(b)
	if u.Left != 0 || u.Top != 0 || u.Right != 15 || u.Bottom != 15 {
		t.Errorf("unexpected union %+v", u)
	}
}

func TestRect_Translate(t *testing.T) {
	r := RectFromLTWH(1, 2, 3, 4).Translate(10, 20)
	if r.Left != 11 || r.Top != 22 {
		t.Errorf("expected translated origin (11,22), got (%v,%v)", r.Left, r.Top)
	}
	if r.Width() != 3 || r.Height() != 4 {
		t.Errorf("translate must preserve size, got %vx%v", r.Width(), r.Height())
	}
}

func TestIsReal(t *testing.T) {
	if !IsReal(0) || !IsReal(-12.5) {
		t.Error("finite values are real")
	}
	if IsReal(math.NaN()) || IsReal(math.Inf(1)) || IsReal(math.Inf(-1)) {
		t.Error("NaN and infinities are not real")
	}
}

func TestOffset_AddSub(t *testing.T) {
	a := Offset{X: 1, Y: 2}
	b := Offset{X: 10, Y: 20}
	if got := a.Add(b); got != (Offset{X: 11, Y: 22}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := b.Sub(a); got != (Offset{X: 9, Y: 18}) {
		t.Errorf("Sub: got %+v", got)
	}
}
