// Package borderscan extracts border-delimited tables from Excel sheets.
package borderscan

import (
	"log/slog"

	"github.com/ukaji3/borderscan-go/pkg/borderscan/parser"
)

// Options configures extraction behavior. Zero values select defaults.
type Options struct {
	// Sheets restricts ExtractWorkbook to the named sheets; empty means all.
	Sheets []string
	// StartRow is the first row scanned for table corners (default 45).
	StartRow int
	// MaxRow bounds the scan (default 100).
	MaxRow int
	// MaxCol bounds the rightward corner search; 0 uses the sheet width.
	MaxCol int
	// Strict turns local recoveries into errors.
	Strict bool
	// SelfLabel names the child keeping the values of a row that also has children.
	SelfLabel string
	// SameFill overrides the fill comparison used for header banding.
	SameFill parser.FillMatcher
	// Logger receives diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	def := parser.DefaultTableParams()
	return Options{
		StartRow:  def.StartRow,
		MaxRow:    def.MaxRow,
		SelfLabel: parser.DefaultSelfLabel,
	}
}

// ShouldLog returns the logger to use.
func (o Options) ShouldLog() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// TableParams maps the options onto region detection parameters.
func (o Options) TableParams() parser.TableDetectionParams {
	p := parser.DefaultTableParams()
	if o.StartRow > 0 {
		p.StartRow = o.StartRow
	}
	if o.MaxRow > 0 {
		p.MaxRow = o.MaxRow
	}
	if o.SameFill != nil {
		p.SameFill = o.SameFill
	}
	p.MaxCol = o.MaxCol
	p.Strict = o.Strict
	p.Logger = o.ShouldLog()
	return p
}

// HierarchyParams maps the options onto hierarchy reconstruction parameters.
func (o Options) HierarchyParams() parser.HierarchyParams {
	return parser.HierarchyParams{
		Strict:    o.Strict,
		SelfLabel: o.SelfLabel,
		Logger:    o.ShouldLog(),
	}
}
