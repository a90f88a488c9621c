package hanabi

// Surface is the 2D drawing collaborator. Coordinates are pixels with
// the origin at the top-left corner. Alpha is 0..1.
type Surface interface {
	Size() (w, h float64)
	Clear(col RGB)
	FillRect(x, y, w, h float64, col RGB, alpha float64)
	FillDisc(x, y, r float64, col RGB, alpha float64)
	Segment(x1, y1, x2, y2, width float64, col RGB, alpha float64)
}
