// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, the Bond tag and the Edge value type.
// Determinism:
//   - Bond and Edge are plain values; every method is pure.
// AI-HINT (file):
//   - Up/Down are relative to Edge.U -> Edge.V. Read them through BondFrom(x)
//     so the direction is flipped when the edge is walked from V.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an index outside 0..Order()-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that two vertices are not bonded.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same two vertices.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrInvalidPermutation indicates a permutation that is not a bijection
	// over the vertex indices.
	ErrInvalidPermutation = errors.New("core: invalid permutation")

	// ErrUnknownTopology indicates a structural query on the unknown topology.
	ErrUnknownTopology = errors.New("core: unknown topology has no atom")

	// ErrNeighborCount indicates a topology built with the wrong number of
	// neighbours for its geometry.
	ErrNeighborCount = errors.New("core: wrong neighbour count for configuration")

	// ErrConfigurationClass indicates a configuration that does not belong to
	// the requested geometry.
	ErrConfigurationClass = errors.New("core: configuration does not match geometry")

	// ErrNotPermutation indicates a re-ordering that is not a permutation of
	// the topology's neighbours.
	ErrNotPermutation = errors.New("core: order is not a permutation of the neighbours")

	// ErrImplicitConfiguration indicates '@'/'@@' that cannot be resolved
	// against the local environment of an atom.
	ErrImplicitConfiguration = errors.New("core: cannot resolve implicit configuration")
)

// Bond is the label of an edge.
type Bond uint8

// Bond labels. Implicit is the default bond written as nothing between two
// atoms; Dot is the explicit non-bond between disconnected components and is
// never stored on an edge.
const (
	Implicit Bond = iota
	Dot
	Single
	Double
	Triple
	Quadruple
	Aromatic
	Up
	Down
)

var bondSymbols = [...]string{
	Implicit:  "",
	Dot:       ".",
	Single:    "-",
	Double:    "=",
	Triple:    "#",
	Quadruple: "$",
	Aromatic:  ":",
	Up:        "/",
	Down:      "\\",
}

// BondOf returns the bond written as the byte c.
func BondOf(c byte) (Bond, bool) {
	switch c {
	case '.':
		return Dot, true
	case '-':
		return Single, true
	case '=':
		return Double, true
	case '#':
		return Triple, true
	case '$':
		return Quadruple, true
	case ':':
		return Aromatic, true
	case '/':
		return Up, true
	case '\\':
		return Down, true
	}
	return Implicit, false
}

// Order is the number of electron pairs the bond contributes to valence.
// Implicit, aromatic and directional bonds count as one, Dot as none.
func (b Bond) Order() int {
	switch b {
	case Dot:
		return 0
	case Double:
		return 2
	case Triple:
		return 3
	case Quadruple:
		return 4
	}
	return 1
}

// Inverse returns the label as read in the opposite direction. Only Up and
// Down are affected.
func (b Bond) Inverse() Bond {
	switch b {
	case Up:
		return Down
	case Down:
		return Up
	}
	return b
}

// Directional reports whether b is Up or Down.
func (b Bond) Directional() bool { return b == Up || b == Down }

// String returns the SMILES symbol of b; Implicit is the empty string.
func (b Bond) String() string {
	if int(b) < len(bondSymbols) {
		return bondSymbols[b]
	}
	return fmt.Sprintf("Bond(%d)", uint8(b))
}

// Edge is a bond between two vertices. U and V are stored in the direction
// the bond was written.
type Edge struct {
	U, V int
	Bond Bond
}

// NewEdge returns the edge u-v labelled b.
func NewEdge(u, v int, b Bond) Edge {
	return Edge{U: u, V: v, Bond: b}
}

// Either returns one endpoint.
func (e Edge) Either() int { return e.U }

// Other returns the endpoint that is not x. x must be an endpoint.
func (e Edge) Other(x int) int {
	if x == e.U {
		return e.V
	}
	return e.U
}

// BondFrom returns the bond label as read from endpoint x.
func (e Edge) BondFrom(x int) Bond {
	if x == e.V {
		return e.Bond.Inverse()
	}
	return e.Bond
}

// Has reports whether x is an endpoint.
func (e Edge) Has(x int) bool { return e.U == x || e.V == x }

// String renders the edge as "u=v".
func (e Edge) String() string {
	sym := e.Bond.String()
	if sym == "" {
		sym = "~"
	}
	return fmt.Sprintf("%d%s%d", e.U, sym, e.V)
}
