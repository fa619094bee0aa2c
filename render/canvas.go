package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/void-siege/core"
)

// Canvas maps the logical playfield onto terminal cells
// Logical pixels scale down to whatever the terminal offers, aspect is not preserved
type Canvas struct {
	screen tcell.Screen

	logicalW, logicalH int
	cols, rows         int
}

// NewCanvas creates a canvas for a logical playfield size
func NewCanvas(screen tcell.Screen, logicalW, logicalH int) *Canvas {
	c := &Canvas{screen: screen, logicalW: logicalW, logicalH: logicalH}
	c.Resize()
	return c
}

// Resize re-reads the terminal size
func (c *Canvas) Resize() {
	c.cols, c.rows = c.screen.Size()
}

// Size returns the terminal size in cells
func (c *Canvas) Size() (int, int) {
	return c.cols, c.rows
}

// Cell converts a logical point to a terminal cell
func (c *Canvas) Cell(x, y int) (int, int) {
	if c.logicalW <= 0 || c.logicalH <= 0 {
		return 0, 0
	}
	return x * c.cols / c.logicalW, y * c.rows / c.logicalH
}

// Row converts a logical y to a terminal row
func (c *Canvas) Row(y int) int {
	_, row := c.Cell(0, y)
	return row
}

// Set draws one cell, clipped to the screen
func (c *Canvas) Set(col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.screen.SetContent(col, row, r, nil, style)
}

// FillRect covers every cell a logical rect touches, at least one cell
func (c *Canvas) FillRect(rect core.Rect, r rune, style tcell.Style) {
	c0, r0 := c.Cell(rect.X, rect.Y)
	c1, r1 := c.Cell(rect.X+max(rect.W-1, 0), rect.Y+max(rect.H-1, 0))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.Set(col, row, r, style)
		}
	}
}

// Text writes s starting at a cell, returns the column after the last rune
func (c *Canvas) Text(col, row int, s string, style tcell.Style) int {
	for _, r := range s {
		c.Set(col, row, r, style)
		col += max(runewidth.RuneWidth(r), 1)
	}
	return col
}

// TextCentered writes s centered on a row
func (c *Canvas) TextCentered(row int, s string, style tcell.Style) {
	c.Text((c.cols-runewidth.StringWidth(s))/2, row, s, style)
}

// HLine draws a horizontal line across the screen at a logical y
func (c *Canvas) HLine(y int, style tcell.Style) {
	row := c.Row(y)
	for col := 0; col < c.cols; col++ {
		c.Set(col, row, '─', style)
	}
}

// Box fills a cell rectangle with spaces, used under overlays
func (c *Canvas) Box(col, row, w, h int, style tcell.Style) {
	for y := row; y < row+h; y++ {
		for x := col; x < col+w; x++ {
			c.Set(x, y, ' ', style)
		}
	}
}
