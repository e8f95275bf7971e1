package graphics

import "testing"

func TestDisplayList_RecordsAndReplays(t *testing.T) {
	var list DisplayList
	list.FillRect(RectFromLTWH(0, 0, 10, 10), ColorRed)
	list.DrawText("hi", Offset{X: 5, Y: 5}, DefaultFont(), ColorWhite)

	if list.Len() != 2 {
		t.Fatalf("expected 2 recorded ops, got %d", list.Len())
	}
	if got := list.Texts(); len(got) != 1 || got[0] != "hi" {
		t.Errorf("expected recorded text [hi], got %v", got)
	}
	if got := list.Rects(); len(got) != 1 || got[0].Width() != 10 {
		t.Errorf("expected one 10-wide rect, got %v", got)
	}

	var target DisplayList
	list.Replay(&target)
	if target.Len() != 2 {
		t.Errorf("expected replay to reproduce 2 ops, got %d", target.Len())
	}

	list.Reset()
	if list.Len() != 0 {
		t.Errorf("expected an empty list after Reset, got %d", list.Len())
	}
}

func TestFont_MeasureText(t *testing.T) {
	f := DefaultFont()
	empty := f.MeasureText("")
	if empty.Width != 0 {
		t.Errorf("expected zero width for empty text, got %v", empty.Width)
	}
	short := f.MeasureText("ab")
	long := f.MeasureText("abcd")
	if long.Width <= short.Width {
		t.Errorf("expected longer text to measure wider: %v vs %v", long.Width, short.Width)
	}
	if short.Height <= 0 {
		t.Errorf("expected positive line height, got %v", short.Height)
	}
}
