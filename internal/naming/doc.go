// Package naming allocates collision-free identifiers for topology elements.
//
// Every element in a topology document (node, link endpoint, special network
// node) carries a unique identifier. Given a requested base name and the set
// of identifiers already present in the document, Generate deterministically
// produces a fresh identifier by classifying the base name and applying the
// matching suffix arithmetic:
//
//   - dummy nodes count up from their requested number ("dummy" -> dummy1),
//   - adapter endpoints increment the interface suffix (host:eth1 -> host:eth2),
//   - special network endpoints append the next counter (macvlan -> macvlan1),
//   - regular nodes take the maximum numeric suffix in use for their root and
//     add one (srl1 with {srl1,srl2,srl4} in use -> srl5).
//
// The allocator never mutates the used-ID set. Callers must insert each
// generated identifier before requesting the next one, or a batch can be
// issued the same identifier twice.
package naming
