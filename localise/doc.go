// Package localise converts aromatic (delocalised) bonding into an explicit
// Kekulé structure.
//
// Every aromatic atom that has room for one more bond must receive exactly
// one double bond from an aromatic neighbour. Finding those partners is a
// perfect-matching problem on the aromatic subgraph: a greedy pass seeds the
// matching and augmenting paths complete it. Bonds on rings of at most
// SmallRingSize atoms are tried first, which favours the conventional
// depiction of fused systems.
//
// Hydrogen counts are invariant: an organic-subset atom whose implied count
// would change once its bonds are explicit is rewritten as a bracket atom
// carrying the original count.
package localise
