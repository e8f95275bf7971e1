package widgets_test

import (
	"fmt"

	"github.com/go-sash/sash/pkg/styles"
	"github.com/go-sash/sash/pkg/widgets"
)

// A dialog is assembled by declaring its widgets, handing them to a frame
// through a widget adder, and finishing. The frame lays the widgets out on
// wrapped lines; the spacer absorbs the leftover width of its line.
func Example() {
	message := &widgets.TextArea{}
	message.SetText("Delete 3 files?")
	okButton := widgets.NewTextButton("Ok")
	cancelButton := widgets.NewTextButton("Cancel")

	dialog := &widgets.Frame{}
	dialog.SetTitle("Confirm")
	if err := dialog.SetSize(240, 120); err != nil {
		fmt.Println(err)
		return
	}

	okButton.SetPressEvent(func() { fmt.Println("deleting") })

	err := dialog.BeginAddingWidgetsStyled(styles.DefaultStyles()).
		Add(message).
		AddLineSeparator().
		Add(okButton).
		AddHorizontalSpacer().
		Add(cancelButton).
		Finish()
	if err != nil {
		fmt.Println(err)
		return
	}

	okButton.Press()
	// Output:
	// deleting
}

// Embedding Frame lets a type act as a reusable compound widget that can
// be added to other frames like any leaf widget.
func Example_embedding() {
	type statusRow struct {
		widgets.Frame
		label widgets.TextArea
		bar   widgets.ProgressBar
	}

	row := &statusRow{}
	row.label.SetText("loading")
	if err := row.bar.SetSize(120, 12); err != nil {
		fmt.Println(err)
		return
	}
	if err := row.bar.SetFillAmount(0.25); err != nil {
		fmt.Println(err)
		return
	}
	if err := row.BeginAddingWidgets().
		Add(&row.label).
		Add(&row.bar).
		Finish(); err != nil {
		fmt.Println(err)
		return
	}

	window := &widgets.Frame{}
	if err := window.BeginAddingWidgets().Add(row).Finish(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(row.bar.FillAmount())
	// Output:
	// 0.25
}
