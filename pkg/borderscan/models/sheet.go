package models

// SimpleTable is a flat table flattened into one record per data row.
type SimpleTable struct {
	// Range is the source region in A1 notation.
	Range string `json:"range" yaml:"range"`
	// Records holds one record per data row, keyed by header.
	Records []Record `json:"records" yaml:"records"`
}

// HierarchicalTable is a complex table rebuilt into a label tree.
type HierarchicalTable struct {
	// Range is the source region in A1 notation.
	Range string `json:"range" yaml:"range"`
	// Tree is the implicit top level of the hierarchy.
	Tree *Node `json:"tree" yaml:"tree"`
}

// SheetData represents the tables extracted from a single sheet.
type SheetData struct {
	// TableRanges lists every detected region in scan order.
	TableRanges []string `json:"table_ranges" yaml:"table_ranges"`
	// Regions carries the bounds and classification of each range.
	Regions []Region `json:"regions,omitempty" yaml:"regions,omitempty"`
	// SimpleTables holds the flattened simple regions in scan order.
	SimpleTables []SimpleTable `json:"simple_tables,omitempty" yaml:"simple_tables,omitempty"`
	// HierarchicalTables holds the reconstructed complex regions in scan order.
	HierarchicalTables []HierarchicalTable `json:"hierarchical_tables,omitempty" yaml:"hierarchical_tables,omitempty"`
}
