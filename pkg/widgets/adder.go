package widgets

import (
	"github.com/go-sash/sash/pkg/errors"
	"github.com/go-sash/sash/pkg/styles"
)

// WidgetAdder collects widget references during a frame's construction
// phase and commits them with an explicit Finish call.
//
// Obtain an adder from [Frame.BeginAddingWidgets] or
// [Frame.BeginAddingWidgetsStyled]; declare widgets in flow order, mixing
// in spacers and line separators; then call [WidgetAdder.Finish] to hand
// everything to the frame and trigger layout finalization. Discarding an
// adder without calling Finish leaves the frame exactly as it was.
//
// Only one adder should target a frame at a time; each Finish wholly
// replaces the frame's member widget list.
type WidgetAdder struct {
	widgets []Widget
	spacers []*HorizontalSpacer
	lineSep *LineSeparator
	styles  styles.Map
	parent  *Frame
}

// newWidgetAdder wires an adder to its frame. A nil frame or separator is a
// library bug, not a user error, and panics immediately.
func newWidgetAdder(parent *Frame, m styles.Map, sep *LineSeparator) *WidgetAdder {
	if parent == nil || sep == nil {
		panic(errors.New("widgets.newWidgetAdder", errors.KindConstruct,
			"parent frame must not be nil and line separator must refer to something"))
	}
	return &WidgetAdder{lineSep: sep, styles: m, parent: parent}
}

// Add appends a widget reference. The frame observes the widget without
// taking ownership; the caller must keep it alive for as long as the frame
// holds it. Whether the widget would make the frame contain itself is
// checked later, when Finish commits the list.
func (a *WidgetAdder) Add(w Widget) *WidgetAdder {
	a.widgets = append(a.widgets, w)
	return a
}

// AddHorizontalSpacer appends a newly constructed spacer. The spacer is
// owned by the frame once Finish commits.
func (a *WidgetAdder) AddHorizontalSpacer() *WidgetAdder {
	spacer := &HorizontalSpacer{}
	a.spacers = append(a.spacers, spacer)
	a.widgets = append(a.widgets, spacer)
	return a
}

// AddLineSeparator appends the frame's shared line separator, forcing a
// line break at this position in the sequence.
func (a *WidgetAdder) AddLineSeparator() *WidgetAdder {
	a.widgets = append(a.widgets, a.lineSep)
	return a
}

// Finish commits the collected widgets and spacers to the owning frame
// and runs the frame's full layout pass. When the adder was created with a
// style table, the table is applied to the frame and its widgets first.
//
// On error (for example a frame that would contain itself) the frame keeps
// whatever members it had before. Finish may be called once; further calls
// return a construct error.
func (a *WidgetAdder) Finish() error {
	if a.parent == nil {
		return errors.New("widgets.WidgetAdder.Finish", errors.KindConstruct,
			"adder has already finished")
	}
	parent := a.parent
	a.parent = nil
	return parent.finalizeWidgets(a.widgets, a.spacers, a.lineSep, a.styles)
}
