package parser

import "errors"

// Recoverable conditions. They are returned only when strict mode is enabled;
// otherwise they are logged and recovered locally.
var (
	// ErrMalformedRegion indicates a region whose closing corner was never found.
	ErrMalformedRegion = errors.New("malformed region")
	// ErrMissingAncestor indicates a row whose ancestor label was never seen.
	ErrMissingAncestor = errors.New("missing ancestor node")
	// ErrAmbiguousIndentation indicates labels without any indentation change.
	ErrAmbiguousIndentation = errors.New("ambiguous indentation")
	// ErrNodeConflict indicates a label that is used both as a leaf and as a branch.
	ErrNodeConflict = errors.New("leaf and branch conflict")
)
