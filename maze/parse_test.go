// SPDX-License-Identifier: MIT

package maze

import (
	"errors"
	"strings"
	"testing"
)

// failingReader returns data followed by a non-EOF error.
type failingReader struct{ done bool }

var errBoom = errors.New("boom")

func (f *failingReader) Read(p []byte) (int, error) {
	if f.done {
		return 0, errBoom
	}
	f.done = true
	return copy(p, "#SE#\n"), nil
}

// TestRead_CRLF ensures Windows line endings and trailing blank lines are tolerated.
func TestRead_CRLF(t *testing.T) {
	g, err := Read(strings.NewReader("####\r\n#SE#\r\n####\r\n\r\n"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if h, w := g.Dimensions(); h != 3 || w != 4 {
		t.Fatalf("dimensions = %dx%d; want 3x4", h, w)
	}
	if g.start != (Position{1, 1}) || g.end != (Position{1, 2}) {
		t.Errorf("start/end = %v/%v; want (1,1)/(1,2)", g.start, g.end)
	}
}

// TestRead_ReaderError ensures I/O failures are surfaced and are not parse errors.
func TestRead_ReaderError(t *testing.T) {
	_, err := Read(&failingReader{})
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v; want wrapped errBoom", err)
	}
	if errors.Is(err, ErrParse) {
		t.Errorf("I/O error must not match ErrParse")
	}
}

// TestRead_LongRow ensures rows beyond the scanner's default token size load.
func TestRead_LongRow(t *testing.T) {
	const width = 70002
	wall := strings.Repeat("#", width)
	row := "#S" + strings.Repeat(".", width-4) + "E#"
	g, err := Read(strings.NewReader(wall + "\n" + row + "\n" + wall + "\n"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if h, w := g.Dimensions(); h != 3 || w != width {
		t.Fatalf("dimensions = %dx%d; want 3x%d", h, w, width)
	}
	if g.end != (Position{1, width - 2}) {
		t.Errorf("end = %v; want (1,%d)", g.end, width-2)
	}
}

// TestFromSeq_LeadingBlank ensures leading blank lines are skipped.
func TestFromSeq_LeadingBlank(t *testing.T) {
	g, err := FromLines([]string{"", "#SE#"})
	if err != nil {
		t.Fatalf("FromLines failed: %v", err)
	}
	if h, _ := g.Dimensions(); h != 1 {
		t.Errorf("height = %d; want 1", h)
	}
}

// TestIndexPosition checks the row-major helpers are inverse.
func TestIndexPosition(t *testing.T) {
	g, _ := FromLines([]string{"#S.#", "#.E#"})
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			p := Position{r, c}
			if got := g.position(g.index(p)); got != p {
				t.Errorf("position(index(%v)) = %v", p, got)
			}
		}
	}
}
