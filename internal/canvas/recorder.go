package canvas

import "image/color"

type OpKind string

const (
	OpClear  OpKind = "clear"
	OpBegin  OpKind = "begin"
	OpMove   OpKind = "move"
	OpLine   OpKind = "line"
	OpClose  OpKind = "close"
	OpFill   OpKind = "fill"
	OpStroke OpKind = "stroke"
)

type Op struct {
	Kind  OpKind
	X, Y  float64
	Color color.Color
}

// Recorder is a Context that only records the operations it receives.
type Recorder struct {
	W, H int
	Ops  []Op
}

func NewRecorder(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(c color.Color) { r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c}) }
func (r *Recorder) BeginPath()          { r.Ops = append(r.Ops, Op{Kind: OpBegin}) }
func (r *Recorder) MoveTo(x, y float64) { r.Ops = append(r.Ops, Op{Kind: OpMove, X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64) { r.Ops = append(r.Ops, Op{Kind: OpLine, X: x, Y: y}) }
func (r *Recorder) ClosePath()          { r.Ops = append(r.Ops, Op{Kind: OpClose}) }
func (r *Recorder) Fill(c color.Color)  { r.Ops = append(r.Ops, Op{Kind: OpFill, Color: c}) }
func (r *Recorder) Stroke(c color.Color, _ float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Color: c})
}

// Count returns how many recorded operations are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops every recorded operation.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
