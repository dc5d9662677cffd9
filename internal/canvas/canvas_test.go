package canvas

import (
	"image/color"
	"math"
	"strings"
	"testing"
	"time"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func square(c Context, x0, y0, x1, y1 float64) {
	c.MoveTo(x0, y0)
	c.LineTo(x1, y0)
	c.LineTo(x1, y1)
	c.LineTo(x0, y1)
	c.ClosePath()
}

func TestBrailleSize(t *testing.T) {
	b := NewBraille(10, 5)
	if w, h := b.Size(); w != 20 || h != 20 {
		t.Errorf("expected 20x20 dots, got %dx%d", w, h)
	}
	if w, h := b.Cells(); w != 10 || h != 5 {
		t.Errorf("expected 10x5 cells, got %dx%d", w, h)
	}
}

func TestBrailleFillHonorsHoles(t *testing.T) {
	b := NewBraille(10, 5)
	b.BeginPath()
	square(b, 2, 2, 18, 18)
	square(b, 8, 8, 12, 12)
	b.Fill(red)

	if !b.Dot(5, 5) {
		t.Error("expected dot inside outer ring")
	}
	if b.Dot(10, 10) {
		t.Error("expected hole to stay empty")
	}
	if b.Dot(1, 1) || b.Dot(19, 19) {
		t.Error("expected dots outside the ring to stay empty")
	}
	if b.Foreground(2, 1) != red {
		t.Errorf("expected fill color on touched cell, got %v", b.Foreground(2, 1))
	}
}

func TestBrailleFillWholeSurface(t *testing.T) {
	b := NewBraille(4, 2)
	b.BeginPath()
	square(b, 0, 0, 8, 8)
	b.Fill(red)
	for i, row := range b.Plain() {
		if row != strings.Repeat("⣿", 4) {
			t.Errorf("row %d: expected full cells, got %q", i, row)
		}
	}
}

func TestBrailleStroke(t *testing.T) {
	b := NewBraille(10, 5)
	b.BeginPath()
	b.MoveTo(0, 0)
	b.LineTo(7, 0)
	b.Stroke(green, 1)
	if !b.Dot(0, 0) || !b.Dot(7, 0) {
		t.Error("expected segment end points to be set")
	}
	if b.Dot(8, 0) {
		t.Error("stroke overshot the segment")
	}
}

func TestBrailleStrokeClosesOnlyClosedPaths(t *testing.T) {
	open := NewBraille(10, 5)
	open.BeginPath()
	open.MoveTo(0, 0)
	open.LineTo(10, 0)
	open.LineTo(10, 10)
	open.Stroke(green, 1)
	if open.Dot(5, 5) {
		t.Error("open path must not get a closing edge")
	}

	closed := NewBraille(10, 5)
	closed.BeginPath()
	closed.MoveTo(0, 0)
	closed.LineTo(10, 0)
	closed.LineTo(10, 10)
	closed.ClosePath()
	closed.Stroke(green, 1)
	if !closed.Dot(5, 5) {
		t.Error("closed path should get its closing edge")
	}
}

func TestBrailleStrokeOverridesFillColor(t *testing.T) {
	b := NewBraille(4, 2)
	b.Clear(blue)
	b.BeginPath()
	square(b, 0, 0, 8, 8)
	b.Fill(red)
	b.BeginPath()
	b.MoveTo(0, 0)
	b.LineTo(1, 0)
	b.Stroke(green, 1)
	if b.Foreground(0, 0) != green {
		t.Errorf("expected stroke color on top, got %v", b.Foreground(0, 0))
	}
	if b.Foreground(3, 1) != red {
		t.Errorf("expected fill color elsewhere, got %v", b.Foreground(3, 1))
	}
}

func TestBrailleFarVerticesStayBounded(t *testing.T) {
	tests := []struct {
		name  string
		far   float64
		close bool
	}{
		{"polygon", 1e9, true},
		{"line", 1e9, false},
		{"huge", 1e15, true},
		{"infinite", math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBraille(80, 20)
			start := time.Now()
			b.BeginPath()
			b.MoveTo(0, 0)
			b.LineTo(tt.far, 0)
			if tt.close {
				b.LineTo(tt.far, 10)
				b.LineTo(0, 10)
				b.ClosePath()
				b.Fill(red)
			}
			b.Stroke(green, 1)
			if d := time.Since(start); d > time.Second {
				t.Fatalf("drawing took %v", d)
			}
			if math.IsInf(tt.far, 0) {
				return
			}
			if !b.Dot(0, 0) || !b.Dot(159, 0) {
				t.Error("expected the visible part of the top edge")
			}
			if tt.close && !b.Dot(100, 5) {
				t.Error("expected the visible part of the polygon filled")
			}
		})
	}
}

func TestClipSegment(t *testing.T) {
	a, e, ok := clipSegment(point{-100, 5}, point{100, 5}, 20, 20)
	near := func(v, want float64) bool { return math.Abs(v-want) < 1e-9 }
	if !ok || !near(a.x, -1) || !near(e.x, 21) || a.y != 5 || e.y != 5 {
		t.Errorf("expected clip to margin, got %v %v %v", a, e, ok)
	}
	a, e, ok = clipSegment(point{2, 3}, point{7, 9}, 20, 20)
	if !ok || a != (point{2, 3}) || e != (point{7, 9}) {
		t.Errorf("inside segment must pass unchanged, got %v %v", a, e)
	}
	if _, _, ok := clipSegment(point{-50, -50}, point{-50, 50}, 20, 20); ok {
		t.Error("segment left of the surface should be rejected")
	}
	if _, _, ok := clipSegment(point{0, 0}, point{math.NaN(), 0}, 20, 20); ok {
		t.Error("NaN segment should be rejected")
	}
}

func TestBrailleClearAndLines(t *testing.T) {
	b := NewBraille(6, 3)
	b.BeginPath()
	square(b, 0, 0, 12, 12)
	b.Fill(red)
	b.Clear(blue)
	for _, row := range b.Plain() {
		if strings.TrimSpace(row) != "" {
			t.Fatalf("expected blank surface after clear, got %q", row)
		}
	}
	lines := b.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if !strings.Contains(l, "      ") {
			t.Errorf("expected six blank cells in %q", l)
		}
	}
}

func TestRasterFillAndStroke(t *testing.T) {
	r := NewRaster(20, 20)
	r.Clear(blue)
	r.BeginPath()
	square(r, 5, 5, 15, 15)
	r.Fill(red)

	img := r.Image()
	if got := img.RGBAAt(10, 10); got != red {
		t.Errorf("expected red inside, got %v", got)
	}
	if got := img.RGBAAt(2, 2); got != blue {
		t.Errorf("expected blue outside, got %v", got)
	}

	r.BeginPath()
	r.MoveTo(0, 18)
	r.LineTo(20, 18)
	r.Stroke(green, 2)
	if got := img.RGBAAt(10, 17); got != green {
		t.Errorf("expected green stroke, got %v", got)
	}
	if got := img.RGBAAt(10, 12); got != red {
		t.Errorf("stroke should not touch the fill, got %v", got)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(360, 180)
	r.BeginPath()
	square(r, 0, 0, 1, 1)
	r.Fill(red)
	if r.Count(OpMove) != 1 || r.Count(OpLine) != 3 || r.Count(OpClose) != 1 || r.Count(OpFill) != 1 {
		t.Errorf("unexpected ops: %+v", r.Ops)
	}
	r.Reset()
	if len(r.Ops) != 0 {
		t.Error("expected reset to drop ops")
	}
}
