// Package matching computes matchings on general (non-bipartite) graphs.
//
// A Matching pairs vertices so that no vertex appears in two pairs. Match
// keeps that invariant by dissolving any pair a new pair displaces.
//
// Two matchers are provided and are meant to be used in sequence:
//
//   - Arbitrary: one greedy pass in index order. Cheap, and for the
//     pi-systems of typical molecules already perfect most of the time.
//   - Maximise: Edmonds' blossom algorithm. Grows alternating trees from the
//     vertices Arbitrary left exposed, contracting odd cycles onto their base
//     (tracked with a union-find) until no augmenting path remains.
//
// Both restrict themselves to an optional subset of vertices and consult
// neighbours in the order Graph.Neighbors returns them, so the caller decides
// which of several maximum matchings is produced.
//
// Complexity:
//
//   - Arbitrary: O(V + E)
//   - Maximise:  O(V^3)
package matching
