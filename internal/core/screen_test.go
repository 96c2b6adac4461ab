package core

import (
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
			if r := s.GetCell(x, y).Rune; r != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", r, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green 'X'", cell)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(100, 0, 'A', ColorRed)
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '#', ColorRed)
	s.Clear()

	if cell := s.GetCell(1, 1); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("After Clear, expected blank cell, got %+v", cell)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetColored(0, 0, '·', ColorGray)
	s.SetColored(1, 0, '█', ColorDefault)
	s.SetColored(2, 1, 'F', ColorRed)

	expected := "·█ \n  F"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	expected := "┌───┐\n│   │\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("DrawBox produced:\n%s\nexpected:\n%s", s.String(), expected)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should carry its color")
	}
}
