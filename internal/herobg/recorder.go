package herobg

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpCircle
	OpLine
	OpGradient
)

// Op is one recorded draw call. Unused coordinates are zero.
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64
	R              float64
	Color          Color
	To             Color
}

// Recorder is a Surface that keeps every draw call in order instead of
// painting, so two frames can be compared call by call.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

var _ Surface = (*Recorder)(nil)

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Resize(width, height int) error {
	r.Width, r.Height = width, height
	return nil
}

// Clear drops the previously recorded ops, mirroring a cleared canvas.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillCircle(x, y, radius float64, c Color) error {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: x, Y0: y, R: radius, Color: c})
	return nil
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, c Color) error {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c})
	return nil
}

func (r *Recorder) FillGradient(from, to Color) error {
	r.Ops = append(r.Ops, Op{Kind: OpGradient, Color: from, To: to})
	return nil
}

// Count returns how many ops of kind were recorded since the last Clear.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
