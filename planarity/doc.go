// Package planarity decides whether an undirected graph is planar using the
// gamma algorithm (Demoucron, Malgrange and Pertuiset): embed one cycle, then
// repeatedly attach the bridge that fits the fewest faces, splitting the host
// face each time.
//
// What:
//
//   - IsPlanar(g, opts...) returns the verdict.
//   - Check(g, opts...) returns the verdict plus a Report of the work done
//     (components, faces allocated, bridges embedded, detached pieces).
//
// How:
//
//   - Cycle extraction: iterative DFS; a back edge to a vertex on the DFS path
//     closes a cycle. An acyclic component is planar and skipped.
//   - Bridges: chords between embedded vertices and connected fragments of
//     unembedded vertices with their contact vertices.
//   - Gamma: the number of faces whose boundary holds every contact of a
//     bridge. Zero means no face can host it: the graph is not planar.
//   - Embedding: the minimum-gamma bridge is committed. A chord or a path
//     through the bridge splits its face in two; a bridge hanging off a
//     single vertex splits nothing and, if it contains a cycle, is tested as
//     an independent piece.
//
// Faces are identified by integer ids carried by the vertices on their
// boundary; the package also keeps each face's boundary walk so a split knows
// which side of the face every vertex lies on.
//
// Input:
//
//   - Graph is [][]int adjacency lists over ids 0..n-1.
//   - Negative or out-of-range ids and self-loops → ErrInvalidGraph.
//   - Duplicated entries collapse. One-sided entries are unioned, or rejected
//     with ErrInvalidGraph under WithStrictSymmetry.
//
// Options:
//
//   - WithTieBreak: which bridge wins among equal minimum gamma.
//   - WithStrictSymmetry: reject asymmetric adjacency.
//   - WithEulerBound: reject m > 3n-6 before embedding.
//   - WithLogger: debug tracing through a charmbracelet/log Logger.
//
// Complexity:
//
//   - Time:   O(V·(V+E)) worst case (each embedded path triggers a rescan).
//   - Memory: O(V+E).
//
// Every call is independent and single-threaded; no state is shared between
// calls, so concurrent calls on different graphs are safe.
package planarity
