// Package core defines the molecular Graph, its Atom and Edge labels and the
// stereo Topology attached to individual atoms.
//
// A Graph G = (V,E) stores:
//
//   - atoms in a dense slice: vertex v is the index into it
//   - bonds in an edge arena: edge id is the position in the arena
//   - adjacency as per-vertex lists of edge ids, symmetric by construction
//   - zero or one Topology per vertex, plus an optional title
//
// Atoms come in two forms. Organic atoms (B C N O P S F Cl Br I * and their
// aromatic lowercase) carry no explicit hydrogen count: ImplHCount derives it
// from the default valence table of package element. Bracket atoms carry
// isotope, charge, hydrogen count and atom class explicitly.
//
// Bond labels:
//
//	Implicit  written as nothing; single, or aromatic between aromatic atoms
//	Single    '-'     Double '='     Triple '#'     Quadruple '$'
//	Aromatic  ':'     Up '/'         Down '\'
//	Dot       '.'     never stored on an edge
//
// Up and Down are relative to the direction the edge was written in; read
// them with Edge.BondFrom.
//
// # Topology
//
// A Topology records the configuration of a stereocentre relative to an
// ordered neighbour list. Five geometries are supported:
//
//	TH1..TH2  tetrahedral                4 neighbours
//	AL1..AL2  extended tetrahedral       4 neighbours (two per allene end)
//	SP1..SP3  square planar              4 neighbours
//	TB1..TB20 trigonal bipyramidal       5 neighbours
//	OH1..OH30 octahedral                 6 neighbours
//
// When the centre has an implicit hydrogen or a lone pair, the centre's own
// index stands in for it inside the neighbour list. OrderBy re-expresses a
// configuration for a different neighbour order; it is how the generator
// turns the order atoms were read in into the order they are written in.
//
// # Ordering
//
// Sort rearranges adjacency lists with an EdgeComparator. CanonicalFirst,
// VisitHydrogenFirst and VisitHighOrderFirst can be combined with Chain.
//
// Errors:
//
//	ErrVertexNotFound        index out of range.
//	ErrEdgeNotFound          vertices not bonded.
//	ErrLoopNotAllowed        edge from a vertex to itself.
//	ErrDuplicateEdge         second edge between two vertices.
//	ErrInvalidPermutation    Permute with a non-bijection.
//	ErrUnknownTopology       Atom() on the unknown topology.
//	ErrNeighborCount         topology with the wrong number of neighbours.
//	ErrConfigurationClass    configuration of another geometry.
//	ErrNotPermutation        OrderBy with a foreign neighbour list.
//	ErrImplicitConfiguration '@'/'@@' that the environment cannot resolve.
//
// A Graph is not safe for concurrent mutation.
package core
