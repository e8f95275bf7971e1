package graphics

// Canvas is the rendering sink widgets draw into. Implementations may paint
// to a real surface, record operations for later replay, or discard them
// entirely; the library never assumes pixels reach a screen.
type Canvas interface {
	// FillRect fills the rectangle with a solid color.
	FillRect(rect Rect, color Color)
	// DrawText draws a single run of text with its top-left corner at pos.
	DrawText(text string, pos Offset, font *Font, color Color)
}

// displayOp is a single recorded drawing operation.
type displayOp interface {
	replay(canvas Canvas)
}

type opFillRect struct {
	rect  Rect
	color Color
}

func (op opFillRect) replay(canvas Canvas) {
	canvas.FillRect(op.rect, op.color)
}

type opDrawText struct {
	text  string
	pos   Offset
	font  *Font
	color Color
}

func (op opDrawText) replay(canvas Canvas) {
	canvas.DrawText(op.text, op.pos, op.font, op.color)
}

// DisplayList is a Canvas that records drawing operations for later replay
// or inspection. Tests use it to observe what a widget painted without a
// rendering backend.
type DisplayList struct {
	ops []displayOp
}

// FillRect records a fill operation.
func (d *DisplayList) FillRect(rect Rect, color Color) {
	d.ops = append(d.ops, opFillRect{rect: rect, color: color})
}

// DrawText records a text operation.
func (d *DisplayList) DrawText(text string, pos Offset, font *Font, color Color) {
	d.ops = append(d.ops, opDrawText{text: text, pos: pos, font: font, color: color})
}

// Replay plays the recorded operations onto another canvas in order.
func (d *DisplayList) Replay(canvas Canvas) {
	for _, op := range d.ops {
		op.replay(canvas)
	}
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Reset discards all recorded operations, keeping allocated capacity.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

// Rects returns the rectangles of all recorded fill operations in order.
func (d *DisplayList) Rects() []Rect {
	var rects []Rect
	for _, op := range d.ops {
		if fill, ok := op.(opFillRect); ok {
			rects = append(rects, fill.rect)
		}
	}
	return rects
}

// TextOrigins returns the positions of all recorded text operations in
// order, parallel to Texts.
func (d *DisplayList) TextOrigins() []Offset {
	var origins []Offset
	for _, op := range d.ops {
		if text, ok := op.(opDrawText); ok {
			origins = append(origins, text.pos)
		}
	}
	return origins
}

// Texts returns the strings of all recorded text operations in order.
func (d *DisplayList) Texts() []string {
	var texts []string
	for _, op := range d.ops {
		if text, ok := op.(opDrawText); ok {
			texts = append(texts, text.text)
		}
	}
	return texts
}
