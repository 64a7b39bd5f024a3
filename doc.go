// Package beam reads, rewrites and writes SMILES line notation.
//
// What is beam?
//
//	A small cheminformatics toolkit built around one molecular graph type:
//		• Parse SMILES (organic and bracket atoms, rings, branches, stereo)
//		• Kekulize aromatic systems with a perfect-matching localiser
//		• Write SMILES in a chosen traversal order with stereo re-expressed
//		• Inspect molecules through the gonum graph interfaces
//
// The root package is a thin facade for the common round trips:
//
//	g, _ := beam.FromSmiles("c1ccccc1")
//	k, _ := beam.Kekule(g)
//	s, _ := beam.ToSmiles(k) // C1=CC=CC=C1
//
// Everything is organised under these packages:
//
//	element/      periodic table and default valences
//	cursor/       forward-only character buffer for the parser
//	core/         Graph, Atom, Edge, Bond and stereo Topology
//	unionfind/    disjoint sets used by the localiser and the matcher
//	matching/     greedy and maximum (blossom) matchings
//	chemgraph/    gonum graph.Undirected view, ring sizes and fragments
//	dfs/          depth-first traversal with tree- and back-edge hooks
//	localise/     Kekulisation
//	parser/       SMILES to Graph
//	generator/    Graph to SMILES
//	internal/cli  cobra commands behind cmd/beam
//	cmd/beam      command-line normaliser, Kekulizer, validator and stats
//
//	go get github.com/katalvlaran/beam
package beam
