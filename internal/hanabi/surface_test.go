package hanabi

// recordSurface captures draw calls for assertions.
type recordSurface struct {
	w, h   float64
	clears []RGB
	rects  []rectOp
	discs  []discOp
	segs   []segOp
}

type rectOp struct {
	x, y, w, h float64
	col        RGB
	alpha      float64
}

type discOp struct {
	x, y, r float64
	col     RGB
	alpha   float64
}

type segOp struct {
	x1, y1, x2, y2, width float64
	col                   RGB
	alpha                 float64
}

func newRecordSurface(w, h float64) *recordSurface {
	return &recordSurface{w: w, h: h}
}

func (s *recordSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordSurface) Clear(col RGB) {
	s.clears = append(s.clears, col)
	s.rects = s.rects[:0]
	s.discs = s.discs[:0]
	s.segs = s.segs[:0]
}

func (s *recordSurface) FillRect(x, y, w, h float64, col RGB, alpha float64) {
	s.rects = append(s.rects, rectOp{x, y, w, h, col, alpha})
}

func (s *recordSurface) FillDisc(x, y, r float64, col RGB, alpha float64) {
	s.discs = append(s.discs, discOp{x, y, r, col, alpha})
}

func (s *recordSurface) Segment(x1, y1, x2, y2, width float64, col RGB, alpha float64) {
	s.segs = append(s.segs, segOp{x1, y1, x2, y2, width, col, alpha})
}
