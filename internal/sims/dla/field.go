package dla

// Field records which cells hold stuck matter. Cells are stored row-major and
// are never cleared once set.
//
// Coordinates passed to Occupied, SetOccupied and Seed must lie inside the
// grid; callers bounds-check first.
type Field struct {
	w, h  int
	cells []bool
	count int
}

// NewField allocates an empty width*height field.
func NewField(width, height int) *Field {
	return &Field{w: width, h: height, cells: make([]bool, width*height)}
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.w }

// Height returns the number of rows.
func (f *Field) Height() int { return f.h }

// Contains reports whether (x, y) is a valid coordinate.
func (f *Field) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.w && y < f.h
}

// Occupied reports whether the cell at (x, y) holds stuck matter.
func (f *Field) Occupied(x, y int) bool {
	return f.cells[y*f.w+x]
}

// SetOccupied marks (x, y) as stuck and reports whether the cell was empty
// before the call.
func (f *Field) SetOccupied(x, y int) bool {
	idx := y*f.w + x
	if f.cells[idx] {
		return false
	}
	f.cells[idx] = true
	f.count++
	return true
}

// Seed plants the initial aggregate point.
func (f *Field) Seed(x, y int) bool { return f.SetOccupied(x, y) }

// Count returns the number of occupied cells.
func (f *Field) Count() int { return f.count }

// Full reports whether no empty cell remains.
func (f *Field) Full() bool { return f.count >= len(f.cells) }
