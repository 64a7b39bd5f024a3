// Package generator writes a core.Graph as SMILES.
//
// The output follows the graph's adjacency order: the first neighbour
// visited from an atom continues the main chain and the others become
// branches, so sorting the graph with core.Graph.Sort selects the traversal
// strategy. Atoms take the shortest faithful form (no brackets when the
// default valence reproduces the hydrogen count), bonds are omitted where a
// reader infers them, and ring labels reuse the lowest free digit.
//
// Stereo descriptors are computed for the exact order in which each centre's
// neighbours appear in the output, so parsing the text restores an
// equivalent topology.
package generator
