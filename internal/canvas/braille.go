package canvas

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Braille is a terminal surface: every cell holds a 2x4 dot mask plus a
// foreground and background color. Strokes are one dot wide.
type Braille struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	fg   [][]color.Color
	bg   [][]color.Color
	p    path
}

// NewBraille returns a blank surface of w x h terminal cells.
func NewBraille(w, h int) *Braille {
	w, h = max(w, 1), max(h, 1)
	b := &Braille{w: w, h: h}
	b.m = make([][]uint8, h)
	b.fg = make([][]color.Color, h)
	b.bg = make([][]color.Color, h)
	for i := range b.m {
		b.m[i] = make([]uint8, w)
		b.fg[i] = make([]color.Color, w)
		b.bg[i] = make([]color.Color, w)
	}
	return b
}

// Size reports the surface in dots.
func (b *Braille) Size() (int, int) { return b.w * 2, b.h * 4 }

// Cells reports the surface in terminal cells.
func (b *Braille) Cells() (int, int) { return b.w, b.h }

func (b *Braille) Clear(c color.Color) {
	for y := range b.m {
		for x := range b.m[y] {
			b.m[y][x] = 0
			b.fg[y][x] = nil
			b.bg[y][x] = c
		}
	}
	b.p.begin()
}

func (b *Braille) BeginPath()          { b.p.begin() }
func (b *Braille) MoveTo(x, y float64) { b.p.moveTo(x, y) }
func (b *Braille) LineTo(x, y float64) { b.p.lineTo(x, y) }
func (b *Braille) ClosePath()          { b.p.closePath() }

// Fill uses the even-odd rule over every sub-path, so holes stay empty.
// Dot rows are sampled at their centers.
func (b *Braille) Fill(c color.Color) {
	wDot, hDot := b.Size()
	var xs []float64
	for y := 0; y < hDot; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		b.p.segments(true, func(a, e point) {
			if a.y == e.y { // horizontal edge: skip
				return
			}
			if (sy >= a.y && sy < e.y) || (sy >= e.y && sy < a.y) {
				t := (sy - a.y) / (e.y - a.y)
				xs = append(xs, a.x+t*(e.x-a.x))
			}
		})
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			// clamp in float space; far vertices must not cost a walk
			x0 := int(math.Round(clampf(xs[i], 0, float64(wDot))))
			x1 := int(math.Round(clampf(xs[i+1], 0, float64(wDot))))
			for x := x0; x < x1; x++ {
				b.set(x, y, c)
			}
		}
	}
}

func (b *Braille) Stroke(c color.Color, _ float64) {
	wDot, hDot := b.Size()
	b.p.segments(false, func(a, e point) {
		a, e, ok := clipSegment(a, e, float64(wDot), float64(hDot))
		if !ok {
			return
		}
		b.line(int(math.Floor(a.x)), int(math.Floor(a.y)), int(math.Floor(e.x)), int(math.Floor(e.y)), c)
	})
}

// Dot reports whether the dot at (x, y) is set.
func (b *Braille) Dot(x, y int) bool {
	cx, cy := x/2, y/4
	if x < 0 || y < 0 || cy >= b.h || cx >= b.w {
		return false
	}
	return b.m[cy][cx]&dotBit(x%2, y%4) != 0
}

// Foreground returns the color of the last paint that touched cell (cx, cy).
func (b *Braille) Foreground(cx, cy int) color.Color {
	if cx < 0 || cy < 0 || cy >= b.h || cx >= b.w {
		return nil
	}
	return b.fg[cy][cx]
}

// set sets a dot at dot coords (2x4 per cell).
func (b *Braille) set(x, y int, c color.Color) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBit(x%2, y%4)
	b.fg[cy][cx] = c
}

func dotBit(rx, ry int) uint8 {
	if rx == 0 {
		switch ry {
		case 0:
			return 0x01
		case 1:
			return 0x02
		case 2:
			return 0x04
		default:
			return 0x40
		}
	}
	switch ry {
	case 0:
		return 0x08
	case 1:
		return 0x10
	case 2:
		return 0x20
	default:
		return 0x80
	}
}

// line draws on the dot grid using Bresenham.
func (b *Braille) line(x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func clampf(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// clipSegment clips a-e to the rectangle [-1, w+1] x [-1, h+1] with
// Liang-Barsky. The one-dot margin keeps edge points where they are; set
// drops them. It reports false when nothing of the segment is inside.
func clipSegment(a, e point, w, h float64) (point, point, bool) {
	for _, v := range [4]float64{a.x, a.y, e.x, e.y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return a, e, false
		}
	}
	dx, dy := e.x-a.x, e.y-a.y
	t0, t1 := 0.0, 1.0
	for _, pq := range [4][2]float64{
		{-dx, a.x + 1},
		{dx, w + 1 - a.x},
		{-dy, a.y + 1},
		{dy, h + 1 - a.y},
	} {
		p, q := pq[0], pq[1]
		if math.IsNaN(p) || math.IsNaN(q) {
			return a, e, false
		}
		if p == 0 {
			if q < 0 {
				return a, e, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, e, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return a, e, false
			}
			t1 = math.Min(t1, r)
		}
	}
	na := point{a.x + t0*dx, a.y + t0*dy}
	ne := point{a.x + t1*dx, a.y + t1*dy}
	return na, ne, true
}

// Plain returns the dot grid as braille runes without colors.
func (b *Braille) Plain() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = glyph(b.m[y][x])
		}
		out[y] = string(row)
	}
	return out
}

// Lines returns the surface as styled terminal lines. Runs of cells with
// the same colors share one style render.
func (b *Braille) Lines() []string {
	styles := map[[2]string]lipgloss.Style{}
	styleFor := func(fg, bg string) lipgloss.Style {
		k := [2]string{fg, bg}
		if s, ok := styles[k]; ok {
			return s
		}
		s := lipgloss.NewStyle()
		if fg != "" {
			s = s.Foreground(lipgloss.Color(fg))
		}
		if bg != "" {
			s = s.Background(lipgloss.Color(bg))
		}
		styles[k] = s
		return s
	}
	out := make([]string, b.h)
	var sb, run strings.Builder
	for y := 0; y < b.h; y++ {
		sb.Reset()
		run.Reset()
		curFg, curBg := "", ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if curFg == "" && curBg == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(curFg, curBg).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < b.w; x++ {
			fg, bg := "", hex(b.bg[y][x])
			if b.m[y][x] != 0 {
				fg = hex(b.fg[y][x])
			}
			if fg != curFg || bg != curBg {
				flush()
				curFg, curBg = fg, bg
			}
			run.WriteRune(glyph(b.m[y][x]))
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func glyph(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func hex(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Hex()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
