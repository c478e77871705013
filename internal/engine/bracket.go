package engine

import (
	"math"
	"slices"
)

// BracketKind classifies where a query falls relative to the control points.
type BracketKind int

const (
	// BelowDomain means the query is left of the first point, the set is
	// empty, or the query is NaN.
	BelowDomain BracketKind = iota

	// AboveDomain means the query is right of the last point.
	AboveDomain

	// ExactHit means the query equals a control point x.
	ExactHit

	// Between means the query lies strictly inside [X[Lo], X[Hi]].
	Between
)

// String returns the bracket kind name.
func (k BracketKind) String() string {
	switch k {
	case BelowDomain:
		return "below"
	case AboveDomain:
		return "above"
	case ExactHit:
		return "exact"
	case Between:
		return "between"
	default:
		return "unknown"
	}
}

// Bracket is the result of Locate.
// For ExactHit, Lo == Hi is the matching index. For Between, Hi == Lo+1.
// Both are -1 for the out-of-domain kinds.
type Bracket struct {
	Kind BracketKind
	Lo   int
	Hi   int
}

// InDomain reports whether the bracket can be handed to a kernel.
func (b Bracket) InDomain() bool {
	return b.Kind == ExactHit || b.Kind == Between
}

var (
	belowDomain = Bracket{Kind: BelowDomain, Lo: -1, Hi: -1}
	aboveDomain = Bracket{Kind: AboveDomain, Lo: -1, Hi: -1}
)

// Locate finds the bracket enclosing q using a binary search over p.X.
// Equality is exact; there is no epsilon. Locate only reads p and is safe
// to call from many goroutines at once.
func Locate(p Points, q float64) Bracket {
	n := len(p.X)
	if n == 0 || math.IsNaN(q) || q < p.X[0] {
		return belowDomain
	}
	if q > p.X[n-1] {
		return aboveDomain
	}

	i, found := slices.BinarySearch(p.X, q)
	if found {
		return Bracket{Kind: ExactHit, Lo: i, Hi: i}
	}

	// q is inside (X[0], X[n-1]) and not equal to any X, so 0 < i < n.
	return Bracket{Kind: Between, Lo: i - 1, Hi: i}
}
