// Package element is the periodic table used by the SMILES parser and
// generator.
//
// Each Element carries its symbol, atomic number, whether it belongs to the
// organic subset (written without brackets: B C N O P S F Cl Br I *) and
// whether it may be written as an aromatic lowercase symbol. Elements of the
// organic subset, plus a few common aromatic heteroatoms, carry a list of
// default valences from which implicit hydrogen counts are derived:
//
//	B 3   C 4   N 3,5   O 2   P 3,5   S 2,4,6   F Cl Br I 1
//
// A formal charge shifts the default valences: group 13 uses v-q, group 14
// v-|q| and groups 15 to 17 v+q.
//
// All data is immutable and every function is pure.
package element
