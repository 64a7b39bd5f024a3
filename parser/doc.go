// Package parser reads SMILES line notation into a core.Graph.
//
// The grammar covers organic-subset atoms (B C N O P S F Cl Br I, their
// aromatic lowercase forms and '*'), bracket atoms with isotope, symbol,
// stereo, hydrogen count, charge and atom class, the bonds - = # $ : / \,
// branches, ring closures written as a digit, %nn or %(n), and '.'
// separating disconnected parts. Anything after the first space or tab is
// kept as the graph's title.
//
// Stereo centres are resolved once the whole input is read: the order in
// which a centre's neighbours are written, with an implicit hydrogen placed
// right after the preceding atom, is the order its configuration refers to.
//
// Charges follow the permissive reading of the reference toolkits: signs
// accumulate left to right and a number ends the run, so "[C-+1]" is neutral
// and "[N++1]" carries +2. WithStrict rejects those forms.
//
// Errors:
//
//   - ErrSyntax     malformed input: unexpected characters, unclosed bracket
//     atoms or branches, missing digits.
//   - ErrStructure  unclosed or conflicting ring bonds, duplicate bonds,
//     stereo centres whose neighbour count does not fit the geometry.
//
// Both are reported through *Error, which also carries the input and the
// offset of the fault. A failed Kekulisation additionally matches
// localise.ErrKekulization.
package parser
