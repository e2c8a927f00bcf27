package core

import (
	"strings"
	"testing"
)

// rows splits the plain screen text into lines.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("new screen = %q, want spaces", got)
	}

	neg := NewScreen(-4, -1)
	if neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", neg.Width(), neg.Height())
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "text clipped at right edge",
			draw: func(s *Screen) { s.DrawText(5, 0, "Tower") },
			want: []string{"     Tow", "        ", "        "},
		},
		{
			name: "text starting off screen",
			draw: func(s *Screen) { s.DrawText(-2, 1, "GOAL") },
			want: []string{"        ", "AL      ", "        "},
		},
		{
			name: "centered text counts runes",
			draw: func(s *Screen) { s.DrawTextCentered(1, "▓▓") },
			want: []string{"        ", "   ▓▓   ", "        "},
		},
		{
			name: "rect fill clipped",
			draw: func(s *Screen) { s.DrawRect(NewRect(6, 1, 4, 4), '█') },
			want: []string{"        ", "      ██", "      ██"},
		},
		{
			name: "box outline",
			draw: func(s *Screen) { s.DrawBox(NewRect(1, 0, 5, 3)) },
			want: []string{" ┌───┐  ", " │   │  ", " └───┘  "},
		},
		{
			name: "vertical line",
			draw: func(s *Screen) { s.DrawVLine(0, 0, 5, '│') },
			want: []string{"│       ", "│       ", "│       "},
		},
		{
			name: "horizontal line",
			draw: func(s *Screen) { s.DrawHLineColored(2, 2, 3, '┄', ColorYellow) },
			want: []string{"        ", "        ", "  ┄┄┄   "},
		},
		{
			name: "out of bounds writes ignored",
			draw: func(s *Screen) {
				s.Set(-1, 0, 'x')
				s.Set(8, 0, 'x')
				s.Set(0, 3, 'x')
			},
			want: []string{"        ", "        ", "        "},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 3)
			tc.draw(s)
			got := rows(s)
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("row %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetColored(1, 1, '█', ColorPink)
	if c := s.GetCell(1, 1); c.Rune != '█' || c.Color != ColorPink {
		t.Errorf("GetCell(1, 1) = %+v, want pink block", c)
	}

	// Plain Set resets the color
	s.Set(1, 1, 'x')
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set should write the default color")
	}

	s.DrawRectColored(NewRect(4, 0, 2, 2), '#', ColorOrange)
	for y := 0; y < 2; y++ {
		for x := 4; x < 6; x++ {
			if c := s.GetCell(x, y); c.Color != ColorOrange {
				t.Errorf("cell (%d, %d) = %+v, want orange", x, y, c)
			}
		}
	}
	if s.GetCell(6, 0).Color != ColorDefault {
		t.Error("DrawRectColored should not color outside its rect")
	}

	s.DrawTextCenteredColored(2, "GO!", ColorBrightGreen)
	if c := s.GetCell(4, 2); c.Rune != 'O' || c.Color != ColorBrightGreen {
		t.Errorf("centered text cell = %+v", c)
	}

	if s.GetCell(-1, 0) != (Cell{Rune: ' '}) || s.Get(99, 99) != ' ' {
		t.Error("out of bounds reads should return a blank cell")
	}

	s.Clear()
	if s.GetCell(4, 0) != (Cell{Rune: ' '}) {
		t.Error("Clear should reset runes and colors")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}
	if got := rows(s)[0]; got != "Hello   " {
		t.Errorf("row 0 = %q after shrinking", got)
	}

	s.Resize(12, 6)
	got := rows(s)
	if got[0] != "Hello       " {
		t.Errorf("row 0 = %q after growing", got[0])
	}
	if strings.TrimSpace(got[5]) != "" {
		t.Errorf("rows cut by the shrink stay blank, got %q", got[5])
	}
}

func TestPaletteColorWraps(t *testing.T) {
	n := len(towerPalette)
	if PaletteColor(0) != PaletteColor(n) {
		t.Error("PaletteColor should wrap around")
	}
	if PaletteColor(-1) != PaletteColor(n-1) {
		t.Error("PaletteColor should wrap negative indexes")
	}
}
