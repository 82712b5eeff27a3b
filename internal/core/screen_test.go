package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 4)

	s.SetColored(3, 2, '@', ColorRed)
	cell := s.Get(3, 2)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("Get(3,2) = %+v, want '@' in red", cell)
	}

	// Out of bounds is silently ignored and reads back blank
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	if got := s.Get(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, '#', ColorBlue)
	s.Clear()

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c := s.Get(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q, want %q", got, "  hello   ")
	}

	// Clipping at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("clipped Row(0) = %q, want %q", got, "        ab")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "mid")
	if got := strings.TrimSpace(s.Row(0)); got != "mid" {
		t.Errorf("centered text = %q, want %q", got, "mid")
	}
	if s.Get(4, 0).Rune != 'm' {
		t.Errorf("expected 'm' at x=4, got %q", s.Get(4, 0).Rune)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "keep")
	s.Resize(10, 5)

	if got := s.Row(0); !strings.HasPrefix(got, "keep") {
		t.Errorf("content lost on grow: %q", got)
	}

	s.Resize(2, 1)
	if got := s.Row(0); got != "ke" {
		t.Errorf("content after shrink = %q, want %q", got, "ke")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(0, 0, 5, 3, ColorDefault)

	if s.Get(0, 0).Rune != '┌' || s.Get(4, 0).Rune != '┐' {
		t.Error("top corners not drawn")
	}
	if s.Get(0, 2).Rune != '└' || s.Get(4, 2).Rune != '┘' {
		t.Error("bottom corners not drawn")
	}
	if s.Get(2, 0).Rune != '─' || s.Get(0, 1).Rune != '│' {
		t.Error("edges not drawn")
	}
	// Interior untouched
	if s.Get(2, 1).Rune != ' ' {
		t.Error("interior should stay blank")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp boundaries wrong")
	}
}
