package parser

// BorderMedium is the only edge style the corner predicates recognise.
const BorderMedium = "medium"

// HasUpperLeftCorner reports whether the top and left edges are both medium.
func HasUpperLeftCorner(c Cell) bool {
	return c.Border.Top == BorderMedium && c.Border.Left == BorderMedium
}

// HasTopRightCorner reports whether the top and right edges are both medium.
func HasTopRightCorner(c Cell) bool {
	return c.Border.Top == BorderMedium && c.Border.Right == BorderMedium
}

// HasBottomRightCorner reports whether the bottom and right edges are both medium.
func HasBottomRightCorner(c Cell) bool {
	return c.Border.Bottom == BorderMedium && c.Border.Right == BorderMedium
}
