// Command sash-demo builds a spacer-heavy dialog, finalizes its layout,
// and renders the computed geometry as a terminal sketch. It exists to
// eyeball spacer distribution and line wrapping without a window system:
// every widget is drawn into a display list and the recorded rectangles
// are mapped onto a character grid.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/go-sash/sash/pkg/events"
	"github.com/go-sash/sash/pkg/graphics"
	"github.com/go-sash/sash/pkg/styles"
	"github.com/go-sash/sash/pkg/widgets"
)

var (
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// titleStyle renders the banner in the sheet's frame title color, so a
// -styles sheet shows up in the terminal output too.
func titleStyle(sheet styles.Map) lipgloss.Style {
	color := graphics.ColorWhite
	styles.SetIfFound(sheet, styles.FrameTitleColor, &color)
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color.Hex()))
}

// spacerDemo is the classic spacer exercise: three wrapped rows of text
// areas, progress bars and buttons with spacers pushing them apart.
type spacerDemo struct {
	widgets.Frame

	row1Text  widgets.TextArea
	row2Bar   widgets.ProgressBar
	row2Text  widgets.TextArea
	row3Text  widgets.TextArea
	row3Bar   widgets.ProgressBar
	closeBtn  *widgets.TextButton
	wantClose bool
}

func (d *spacerDemo) setup(sheet styles.Map) error {
	d.row1Text.SetText("Sash Sample")
	if err := d.row2Bar.SetSize(100, 32); err != nil {
		return err
	}
	if err := d.row2Bar.SetFillAmount(0.48); err != nil {
		return err
	}
	d.row2Text.SetText("Hello")
	d.row3Text.SetText("Row 3")
	if err := d.row3Bar.SetSize(100, 32); err != nil {
		return err
	}
	if err := d.row3Bar.SetFillAmount(0.78); err != nil {
		return err
	}
	d.closeBtn = widgets.NewTextButton("Close Application")
	d.closeBtn.SetPressEvent(func() { d.wantClose = true })

	d.SetTitle("Spacer Demo")

	return d.BeginAddingWidgetsStyled(sheet).
		Add(&d.row1Text).
		AddHorizontalSpacer().
		AddLineSeparator().
		AddHorizontalSpacer().
		Add(&d.row2Bar).
		AddHorizontalSpacer().
		Add(&d.row2Text).
		AddLineSeparator().
		Add(&d.row3Text).
		AddHorizontalSpacer().
		Add(&d.row3Bar).
		AddHorizontalSpacer().
		AddLineSeparator().
		AddHorizontalSpacer().
		Add(d.closeBtn).
		AddHorizontalSpacer().
		Finish()
}

func main() {
	sheetPath := flag.String("styles", "", "path to a YAML style sheet")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	sheet := styles.DefaultStyles()
	if *sheetPath != "" {
		loaded, err := styles.LoadSheet(*sheetPath)
		if err != nil {
			logger.Fatal("loading style sheet", "path", *sheetPath, "err", err)
		}
		sheet = loaded
		logger.Info("loaded style sheet", "path", *sheetPath, "keys", len(sheet))
	}

	demo := &spacerDemo{}
	if err := demo.setup(sheet); err != nil {
		logger.Fatal("building dialog", "err", err)
	}
	logger.Info("dialog finalized",
		"width", demo.Width(), "height", demo.Height())

	demo.IterateChildren(func(w widgets.Widget) {
		logger.Debug("placed",
			"x", w.Location().X, "y", w.Location().Y,
			"w", w.Width(), "h", w.Height())
	})

	// walk focus through the dialog, then press the close button, the way
	// a keyboard user would
	demo.ProcessEvent(events.KeyPressed{Key: events.KeyTab})
	demo.ProcessEvent(events.KeyPressed{Key: events.KeyEnter})
	if demo.wantClose {
		logger.Info("close button pressed via keyboard focus")
	}

	var list graphics.DisplayList
	demo.Draw(&list)
	logger.Debug("display list recorded", "ops", list.Len())

	fmt.Println(titleStyle(sheet).Render("sash spacer demo"))
	fmt.Println(frameStyle.Render(sketch(demo, &list)))
	fmt.Println(mutedStyle.Render(fmt.Sprintf(
		"dialog %.0fx%.0f, %d draw ops", demo.Width(), demo.Height(), list.Len())))
}

// cell size of the terminal sketch in layout pixels
const (
	cellW = 8.0
	cellH = 16.0
)

// sketch maps the recorded rectangles and text runs onto a character
// grid: '#' for filled regions, text drawn over the top.
func sketch(demo *spacerDemo, list *graphics.DisplayList) string {
	cols := int(demo.Width()/cellW) + 1
	rows := int(demo.Height()/cellH) + 1
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	plot := func(x, y float64, r rune) {
		col := int(x / cellW)
		row := int(y / cellH)
		if row >= 0 && row < rows && col >= 0 && col < cols {
			grid[row][col] = r
		}
	}
	for _, rect := range list.Rects() {
		for y := rect.Top; y < rect.Bottom; y += cellH {
			for x := rect.Left; x < rect.Right; x += cellW {
				plot(x, y, '#')
			}
		}
	}
	for i, text := range list.Texts() {
		at := list.TextOrigins()[i]
		for j, r := range text {
			plot(at.X+float64(j)*cellW, at.Y, r)
		}
	}

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
