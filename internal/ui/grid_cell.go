package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/schulte-grid/internal/model"
)

// GridCell is one tappable square of the Schulte grid
type GridCell struct {
	widget.BaseWidget

	index   int
	cell    model.Cell
	enabled bool
	onTap   func(index int)
}

var _ fyne.Tappable = (*GridCell)(nil)

// NewGridCell creates an empty, disabled cell at index
func NewGridCell(index int, onTap func(index int)) *GridCell {
	c := &GridCell{
		index: index,
		onTap: onTap,
	}
	c.ExtendBaseWidget(c)
	return c
}

// SetCell updates the displayed cell state
func (c *GridCell) SetCell(cell model.Cell, enabled bool) {
	if c.cell == cell && c.enabled == enabled {
		return
	}
	c.cell = cell
	c.enabled = enabled
	c.Refresh()
}

// Cell returns the displayed cell state
func (c *GridCell) Cell() model.Cell {
	return c.cell
}

// Tapped forwards taps to the click handler while the grid accepts clicks
func (c *GridCell) Tapped(_ *fyne.PointEvent) {
	if !c.enabled || c.onTap == nil {
		return
	}
	c.onTap(c.index)
}

// CreateRenderer creates the widget renderer
func (c *GridCell) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.Transparent)
	background.CornerRadius = CellCornerRadius

	text := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	text.Alignment = fyne.TextAlignCenter
	text.TextSize = CellTextSize
	text.TextStyle = fyne.TextStyle{Bold: true}

	r := &gridCellRenderer{cell: c, background: background, text: text}
	r.Refresh()
	return r
}

// gridCellRenderer renders the grid cell widget
type gridCellRenderer struct {
	cell       *GridCell
	background *canvas.Rectangle
	text       *canvas.Text
}

// Layout arranges the components
func (r *gridCellRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)

	textSize := r.text.MinSize()
	r.text.Resize(fyne.NewSize(size.Width, textSize.Height))
	r.text.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
}

// MinSize returns the minimum size
func (r *gridCellRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CellSize, CellSize)
}

// Refresh refreshes the renderer
func (r *gridCellRenderer) Refresh() {
	cell := r.cell.cell

	switch {
	case cell.Error:
		r.background.FillColor = theme.Color(theme.ColorNameError)
	case cell.Clicked:
		r.background.FillColor = theme.Color(theme.ColorNameSuccess)
	case r.cell.enabled:
		r.background.FillColor = theme.Color(theme.ColorNameButton)
	default:
		r.background.FillColor = theme.Color(theme.ColorNameDisabledButton)
	}

	r.text.Text = ""
	if cell.Number > 0 {
		r.text.Text = strconv.Itoa(cell.Number)
	}
	r.text.Color = theme.Color(theme.ColorNameForeground)

	r.background.Refresh()
	r.text.Refresh()
}

// Objects returns the canvas objects
func (r *gridCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.text}
}

// Destroy cleans up the renderer
func (r *gridCellRenderer) Destroy() {}
