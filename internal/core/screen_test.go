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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if s.Get(3, 2) != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", s.Get(3, 2))
	}

	// Out-of-bounds set is ignored
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	// Out-of-bounds get returns space
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, 'F', ColorOrange)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'F' || cell.Color != ColorOrange {
		t.Errorf("GetCell(1, 1) = %+v, expected {F orange}", cell)
	}

	// Default-color Set leaves color at default
	s.Set(2, 1, 'x')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should use the default color")
	}

	// Out-of-bounds GetCell returns a default space
	if c := s.GetCell(99, 99); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Out-of-bounds GetCell = %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello   " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(7, 0, "world")
	if s.Row(0) != "       wor" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")
	if s.Row(1) != "    abc    " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)

	s.DrawBox(NewRect(1, 1, 4, 3))

	if s.Get(1, 1) != '┌' || s.Get(4, 1) != '┐' {
		t.Error("Box top corners not drawn")
	}
	if s.Get(1, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Error("Box bottom corners not drawn")
	}
	if s.Get(2, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges not drawn")
	}
	// Interior untouched
	if s.Get(2, 2) != ' ' {
		t.Error("Box interior should stay empty")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	got := s.String()
	want := "ab \ncd "
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should join rows with a single newline between them")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '@')

	// Grow: content preserved
	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if s.Get(2, 2) != '@' {
		t.Error("Resize should preserve content")
	}

	// Shrink below the content: content clipped, no panic
	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("Clipped content should read as space")
	}
}
