package parser

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/borderscan-go/pkg/borderscan/models"
)

// DefaultSelfLabel names the child that keeps the values of a row whose label
// also has children.
const DefaultSelfLabel = "(self)"

// HierarchyParams configures BuildHierarchy.
type HierarchyParams struct {
	// Strict reports recoveries as errors.
	Strict bool
	// SelfLabel defaults to DefaultSelfLabel.
	SelfLabel string
	// Logger receives recoveries.
	Logger *slog.Logger
}

func (p HierarchyParams) withDefaults() HierarchyParams {
	if p.SelfLabel == "" {
		p.SelfLabel = DefaultSelfLabel
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	return p
}

// LeadingSpaces counts the whitespace characters before the first
// non-whitespace character of s.
func LeadingSpaces(s string) int {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	return utf8.RuneCountInString(s[:len(s)-len(trimmed)])
}

// IndentUnit returns the first non-zero difference in leading whitespace
// between consecutive labels. ok is false when every label has the same
// indentation; the unit is then 1.
func IndentUnit(labels []string) (unit int, ok bool) {
	for i := 0; i+1 < len(labels); i++ {
		d := LeadingSpaces(labels[i+1]) - LeadingSpaces(labels[i])
		if d < 0 {
			d = -d
		}
		if d != 0 {
			return d, true
		}
	}
	return 1, false
}

// IndentLevel converts the indentation of label into a depth.
func IndentLevel(label string, unit int) int {
	if unit <= 0 {
		unit = 1
	}
	return LeadingSpaces(label) / unit
}

// BuildHierarchy rebuilds a complex table into a label tree. Row 1 holds the
// column headers from column 2 on; column 1 holds indentation-coded labels
// from row 2 on. Rows with at least one populated data cell become leaves;
// the others become branches that later rows can nest under.
func BuildHierarchy(g *Grid, params HierarchyParams) (*models.Node, error) {
	params = params.withDefaults()
	b := &treeBuilder{root: models.NewBranch(), params: params}

	if g.Rows() < 1 {
		return b.root, nil
	}

	headers := g.Row(1)
	if len(headers) > 0 {
		headers = headers[1:]
	}
	labels := g.Column(1)[1:]

	unit, ok := IndentUnit(labels)
	if !ok && len(labels) > 1 {
		if params.Strict {
			return nil, fmt.Errorf("%w: %d labels share one indentation", ErrAmbiguousIndentation, len(labels))
		}
		params.Logger.Warn("indentation unit not found, using 1",
			slog.Int("labels", len(labels)))
	}

	var path []string
	for r := 2; r <= g.Rows(); r++ {
		raw := g.Value(r, 1)
		path = nextPath(path, IndentLevel(raw, unit), strings.TrimSpace(raw))

		values, populated := rowValues(g, r, headers)
		var err error
		if populated {
			err = b.addLeaf(path, values)
		} else {
			err = b.addBranch(path)
		}
		if err != nil {
			return nil, err
		}
	}

	// Only the top level is cleaned, mirroring the record filter.
	for _, label := range b.root.Labels() {
		if child, _ := b.root.Child(label); label == "" && child.IsEmpty() {
			b.root.RemoveChild(label)
		}
	}

	return b.root, nil
}

// nextPath truncates path to level and appends label. Levels skipped by a
// deeper indentation are filled with empty labels.
func nextPath(path []string, level int, label string) []string {
	next := make([]string, 0, level+1)
	next = append(next, path[:min(level, len(path))]...)
	for len(next) < level {
		next = append(next, "")
	}
	return append(next, label)
}

// rowValues pairs each non-empty header with the data cell below it.
// populated reports whether any data cell of the row holds a value.
func rowValues(g *Grid, row int, headers []string) (models.Record, bool) {
	var rec models.Record
	populated := false
	for i, h := range headers {
		v := g.Value(row, i+2)
		if v != "" {
			populated = true
		}
		if h == "" {
			continue
		}
		rec.Set(h, v)
	}
	return rec, populated
}

type treeBuilder struct {
	root   *models.Node
	params HierarchyParams
}

// parentOf returns the branch that holds the last label of path, creating
// missing ancestors and turning leaf ancestors into branches.
func (b *treeBuilder) parentOf(path []string) (*models.Node, error) {
	cur := b.root
	for i, label := range path[:len(path)-1] {
		child, ok := cur.Child(label)
		switch {
		case !ok:
			if b.params.Strict {
				return nil, fmt.Errorf("%w: %q under %q", ErrMissingAncestor, label, path[:i])
			}
			b.params.Logger.Warn("node not found, creating",
				slog.String("label", label),
				slog.Any("path", path[:i+1]))
			child = models.NewBranch()
			cur.SetChild(label, child)
		case child.IsLeaf():
			if b.params.Strict {
				return nil, fmt.Errorf("%w: %q has values and children", ErrNodeConflict, label)
			}
			b.params.Logger.Warn("leaf gains children, keeping its values under self label",
				slog.String("label", label),
				slog.String("self_label", b.params.SelfLabel))
			child.ToBranch(b.params.SelfLabel)
		}
		cur = child
	}
	return cur, nil
}

func (b *treeBuilder) addBranch(path []string) error {
	parent, err := b.parentOf(path)
	if err != nil {
		return err
	}
	label := path[len(path)-1]
	if _, ok := parent.Child(label); !ok {
		parent.SetChild(label, models.NewBranch())
	}
	return nil
}

func (b *treeBuilder) addLeaf(path []string, values models.Record) error {
	parent, err := b.parentOf(path)
	if err != nil {
		return err
	}
	label := path[len(path)-1]
	existing, ok := parent.Child(label)
	switch {
	case !ok:
		parent.SetChild(label, models.NewLeaf(values))
	case existing.IsLeaf() && label == b.params.SelfLabel:
		return b.selfConflict(label)
	case existing.IsLeaf():
		b.params.Logger.Debug("duplicate label, keeping last values",
			slog.String("label", label))
		parent.SetChild(label, models.NewLeaf(values))
	default:
		if _, taken := existing.Child(b.params.SelfLabel); taken {
			return b.selfConflict(label)
		}
		if b.params.Strict {
			return fmt.Errorf("%w: %q has values and children", ErrNodeConflict, label)
		}
		b.params.Logger.Warn("branch row carries values, keeping them under self label",
			slog.String("label", label),
			slog.String("self_label", b.params.SelfLabel))
		existing.SetChild(b.params.SelfLabel, models.NewLeaf(values))
	}
	return nil
}

// selfConflict handles a row whose values would replace the values kept under
// the self label. The values already stored win.
func (b *treeBuilder) selfConflict(label string) error {
	if b.params.Strict {
		return fmt.Errorf("%w: %q collides with self label %q", ErrNodeConflict, label, b.params.SelfLabel)
	}
	b.params.Logger.Warn("row collides with self label, keeping stored values",
		slog.String("label", label),
		slog.String("self_label", b.params.SelfLabel))
	return nil
}
