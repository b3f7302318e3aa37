package models

// TableKind classifies a detected region.
type TableKind string

const (
	// TableSimple is a flat table: a header row followed by uniform records.
	TableSimple TableKind = "simple"
	// TableComplex is a hierarchical table whose first column is indentation-coded.
	TableComplex TableKind = "complex"
)

// Bounds represents cell coordinate bounds of a rectangle.
type Bounds struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1" yaml:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1" yaml:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2" yaml:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2" yaml:"c2"`
}

// Rows returns the number of rows covered.
func (b Bounds) Rows() int {
	return b.R2 - b.R1 + 1
}

// Cols returns the number of columns covered.
func (b Bounds) Cols() int {
	return b.C2 - b.C1 + 1
}

// Contains reports whether the cell (row, col) lies within the bounds.
func (b Bounds) Contains(row, col int) bool {
	return row >= b.R1 && row <= b.R2 && col >= b.C1 && col <= b.C2
}

// Intersects reports whether two bounds share at least one cell.
func (b Bounds) Intersects(o Bounds) bool {
	return b.R1 <= o.R2 && o.R1 <= b.R2 && b.C1 <= o.C2 && o.C1 <= b.C2
}

// Region is a detected rectangular table on a sheet.
type Region struct {
	Bounds `yaml:",inline"`
	// Range is the region in A1 notation, e.g. "B46:F60".
	Range string `json:"range" yaml:"range"`
	// Kind is fixed when the top-left corner is found.
	Kind TableKind `json:"kind" yaml:"kind"`
	// HeaderRows is the number of leading rows sharing the header fill (at least 1).
	HeaderRows int `json:"header_rows" yaml:"header_rows"`
}
