package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorPlayer)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorPlayer {
		t.Errorf("GetCell(5, 5) = %+v, expected X/ColorPlayer", cell)
	}

	s.FillBg(NewRect(5, 5, 1, 1), ColorSkyLow)
	s.SetColored(5, 5, 'Z', ColorStar)
	if s.GetCell(5, 5).Bg != ColorSkyLow {
		t.Error("SetColored should preserve the background")
	}

	// Set keeps the existing color
	s.Set(5, 5, 'Y')
	if s.GetCell(5, 5).Color != ColorStar {
		t.Error("Set should preserve the cell color")
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorText)
	s.SetColored(100, 0, 'A', ColorText)
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#', ColorGround)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("After Fill, expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}

	s.FillBg(NewRect(1, 1, 2, 2), ColorSkyHigh)
	if c := s.GetCell(1, 1); c.Bg != ColorSkyHigh || c.Rune != '#' {
		t.Errorf("FillBg should only paint the background, got %+v", c)
	}
	if c := s.GetCell(3, 3); c.Bg != ColorDefault {
		t.Errorf("FillBg should not paint outside its rect, got %+v", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault || c.Bg != ColorDefault {
		t.Errorf("After Clear, expected blank cell, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorText)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	s.DrawText(18, 0, "Hello", ColorText)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorText)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorObstacle)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorText)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '╭'},
		{5, 1, '╮'},
		{1, 4, '╰'},
		{5, 4, '╯'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorText)
	s.DrawText(0, 1, "BBBBB", ColorText)
	s.DrawText(0, 2, "CCCCC", ColorText)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorText)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); strings.TrimSpace(row) != "" {
		t.Errorf("Resize should discard content, row 0 = %q", row)
	}

	s.Resize(-3, 2)
	if s.Width() != 0 {
		t.Errorf("negative width should clamp to 0, got %d", s.Width())
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorText)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}
	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
