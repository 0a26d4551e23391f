package core

import (
	"strings"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color // Foreground
	Bg    Color // Background, ColorDefault leaves the terminal default
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D colored character buffer. Renderers draw into it using
// simple rune operations and the platform layer handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded since every
// frame is redrawn from scratch.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	s.Fill(' ', ColorDefault)
}

// Fill fills the entire screen with the given rune and color, resetting
// backgrounds.
func (s *Screen) Fill(r rune, c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, Color: c}
		}
	}
}

// FillBg paints the background of a rectangular area, keeping runes and
// foreground colors.
func (s *Screen) FillBg(r Rect, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if s.inBounds(x, y) {
				s.cells[y][x].Bg = c
			}
		}
	}
}

// Set places a rune at the given position, keeping the cell color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
}

// SetColored places a colored rune at the given position, keeping the
// background.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].Color = c
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out
// of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// DrawText writes a string horizontally starting at (x, y) in the given color.
// Characters beyond the screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune and color.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox draws a rounded box outline.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.SetColored(r.X, r.Y, '╭', c)
	s.SetColored(r.Right()-1, r.Y, '╮', c)
	s.SetColored(r.X, r.Bottom()-1, '╰', c)
	s.SetColored(r.Right()-1, r.Bottom()-1, '╯', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(r.Right()-1, y, '│', c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// String converts the screen buffer to plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
