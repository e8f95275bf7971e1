// Package widgets provides retained-mode visual controls and the Frame
// container that composes them.
//
// # Composition Model
//
// A [Frame] arranges member widgets into wrapped horizontal lines, much like
// English text: widgets flow left to right in the order they were added, a
// [LineSeparator] forces a line break, and a [HorizontalSpacer] expands to
// absorb a line's leftover space. Widgets are declared through a
// [WidgetAdder] obtained from [Frame.BeginAddingWidgets]; committing the
// adder with Finish hands the collected widgets to the frame and runs the
// layout pass.
//
//	var dialog widgets.Frame
//	adder := dialog.BeginAddingWidgetsStyled(styles.DefaultStyles())
//	adder.Add(&face).
//		Add(&message).
//		AddLineSeparator().
//		AddHorizontalSpacer().
//		Add(&okButton)
//	if err := adder.Finish(); err != nil {
//		// the frame kept its previous contents
//	}
//
// # Ownership Model
//
// A frame does not own its member widgets; whoever declared a widget (as a
// struct field or otherwise) owns it and must keep it alive for as long as
// any frame observes it. The only widgets a frame owns are its spacers and
// its one line separator. This lets user types embed Frame and declare
// their member widgets as plain fields:
//
//	type DialogBox struct {
//		widgets.Frame
//		message widgets.TextArea
//		ok      widgets.TextButton
//	}
//
// Frames found among a frame's members are laid out recursively; a frame
// that would directly or transitively contain itself is rejected when the
// adder commits.
package widgets
