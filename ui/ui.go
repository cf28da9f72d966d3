package ui

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"

	"runedrag/controller"
	"runedrag/engine"
	"runedrag/utils"
)

const textSize = unit.Sp(24)

// tiles are drawn slightly smaller than their cell so the grid shows
const tileInsetPx = 2

type UI struct {
	controller *controller.Controller
	logger     *log.Logger
	theme      *material.Theme
	phase      Phase
	lastRemove int
	hint       *engine.Action
	pointer    f32.Point
}

func New(c *controller.Controller, logger *log.Logger) *UI {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &UI{
		controller: c,
		logger:     logger,
		theme:      material.NewTheme(),
		phase:      Idle,
	}
}

func (ui *UI) setPhase(phase Phase) {
	if ui.phase != phase {
		ui.logger.Debug("phase", "from", ui.phase, "to", phase)
	}
	ui.phase = phase
}

func (ui *UI) onPress(p f32.Point) {
	ui.hint = nil
	ui.pointer = p
	ui.setPhase(Drag)
	ui.controller.PointerDown(p)
}

func (ui *UI) onDrag(p f32.Point) {
	ui.pointer = p
	ui.controller.PointerMove(p)
}

func (ui *UI) onRelease() {
	out := ui.controller.PointerUp()
	ui.lastRemove = out.Removed

	if out.Removed > 0 {
		ui.setPhase(Matched)
	} else {
		ui.setPhase(Idle)
	}
}

func (ui *UI) onKey(name key.Name) {
	switch name {
	case "R":
		ui.logger.Info("new board")
		ui.hint = nil
		ui.controller.Reset()
		ui.setPhase(Idle)
	case "H":
		if move, ok := ui.controller.Hint(); ok {
			ui.hint = &move
		} else {
			ui.logger.Info("no move produces a match")
		}
	}
}

func (ui *UI) handleEvents(gtx layout.Context, tag *bool) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: tag,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}

		if x, ok := ev.(pointer.Event); ok {
			switch x.Kind {
			case pointer.Press:
				ui.onPress(x.Position)
			case pointer.Drag:
				ui.onDrag(x.Position)
			case pointer.Release, pointer.Cancel:
				ui.onRelease()
			}
		}
	}

	for {
		ev, ok := gtx.Event(key.Filter{Name: "R"}, key.Filter{Name: "H"})
		if !ok {
			break
		}

		if x, ok := ev.(key.Event); ok && x.State == key.Press {
			ui.onKey(x.Name)
		}
	}
}

func (ui *UI) draw(window *app.Window) error {
	var ops op.Ops

	tag := new(bool)

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			area := clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops)
			event.Op(gtx.Ops, tag)
			ui.handleEvents(gtx, tag)

			paint.Fill(gtx.Ops, ui.getBackgroundColor())
			ui.drawGrid(gtx)
			ui.drawStatus(gtx)

			area.Pop()

			e.Frame(gtx.Ops)
		}
	}
}

func (ui *UI) getBackgroundColor() color.NRGBA {
	return backgroundColorFor(ui.phase)
}

func backgroundColorFor(phase Phase) color.NRGBA {
	switch phase {
	case Drag:
		return dragBackgroundColor
	case Matched:
		return matchedBackgroundColor
	default:
		return backgroundColor
	}
}

func (ui *UI) drawGrid(gtx layout.Context) {
	e := ui.controller.Engine()
	lay := e.Layout()
	kinds := e.Kinds()
	size := int(lay.TileSize)

	for i := 0; i < e.Rows(); i++ {
		for j := 0; j < e.Cols(); j++ {
			c := engine.Coord{Row: i, Col: j}
			origin := lay.CellOrigin(c).Round()

			drawRect(gtx, origin.X, origin.Y, size, size, gridLineColor)
			drawRect(gtx, origin.X+tileInsetPx, origin.Y+tileInsetPx, size-2*tileInsetPx, size-2*tileInsetPx, getColor(kinds[i][j]))
		}
	}

	for _, c := range e.DragPath() {
		origin := lay.CellOrigin(c).Round()
		drawRect(gtx, origin.X, origin.Y, size, size, pathColor)
	}

	if ui.hint != nil {
		for _, c := range []engine.Coord{ui.hint.From, ui.hint.To} {
			origin := lay.CellOrigin(c).Round()
			drawRect(gtx, origin.X, origin.Y, size, size, hintColor)
		}
	}

	if ui.controller.Dragging() {
		// cursor marker, kept inside the board so it never covers the status text
		x := utils.Clamp(int(ui.pointer.X), int(lay.Origin.X), int(lay.Origin.X)+e.Cols()*size)
		y := utils.Clamp(int(ui.pointer.Y), int(lay.Origin.Y), int(lay.Origin.Y)+e.Rows()*size)
		drawCircle(x, y, gtx, pathColor, size/4)
	}
}

func (ui *UI) drawStatus(gtx layout.Context) {
	lines := []string{
		fmt.Sprintf("Score: %d", ui.controller.Score),
		fmt.Sprintf("Combo: %d", ui.controller.Combo),
		fmt.Sprintf("Last: %d", ui.lastRemove),
	}

	for i, line := range lines {
		stack := op.Offset(image.Point{X: 20, Y: 20 + i*gtx.Dp(unit.Dp(40))}).Push(gtx.Ops)
		label := material.Label(ui.theme, textSize, line)
		label.Color = textColor
		label.Layout(gtx)
		stack.Pop()
	}
}

func drawCircle(x, y int, gtx layout.Context, color color.NRGBA, radius int) {
	ellipse := clip.Ellipse{
		Min: image.Point{X: x - radius, Y: y - radius},
		Max: image.Point{X: x + radius, Y: y + radius},
	}

	paint.FillShape(gtx.Ops, color, ellipse.Op(gtx.Ops))
}

func drawRect(gtx layout.Context, x, y, width, height int, color color.NRGBA) {
	if width <= 0 || height <= 0 {
		return
	}

	rect := clip.Rect(image.Rect(x, y, x+width, y+height))
	paint.FillShape(gtx.Ops, color, rect.Op())
}

// Run opens the window and never returns: the process exits when the window
// is closed. It must be called from the main goroutine since it ends in
// app.Main.
func Run(c *controller.Controller, logger *log.Logger, width, height int) {
	ui := New(c, logger)

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("runedrag"),
			app.Size(unit.Dp(width), unit.Dp(height)),
		)

		if err := ui.draw(window); err != nil {
			logger.Fatal("window closed", "error", err)
		}
		os.Exit(0)
	}()

	app.Main()
}
