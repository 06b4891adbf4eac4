// Package core defines the similarity Edge model shared by every analysis stage:
// the raw Record as it arrives from a data source, label parsing, the derived
// Edge with its weight, the ordering contract, and an insertion-ordered
// adjacency index.
//
// What is an edge here?
//
//	One similarity measurement between two items (typically two files). Each
//	endpoint label carries the item name and the share of that item's content
//	found in the other one:
//
//	    Module17(83%)  ↔  Module42(61%)   shared lines: 120
//
//	The node id is every digit of the text before "(" concatenated in order
//	(Module17 → 17, a1b2 → 12). The weight of the edge is max(83, 61) = 83.
//
// Ordering contract:
//
//	Compare(a, b) < 0 means a is the "better" edge:
//	  1. higher Weight first;
//	  2. on equal Weight, higher SharedLines first;
//	  3. otherwise the edges are order-equivalent (Compare == 0).
//	Both spanning-forest builders and the frontier heap use this single order.
//
// Adjacency:
//
//	NewAdjacency indexes edges by endpoint in first-seen order. Go maps iterate
//	randomly, so every traversal in this module walks Adjacency.Nodes() instead
//	of ranging over a map; results are therefore reproducible for a fixed input.
//
// Errors:
//
//	ErrMalformedLabel - a label misses "(" or "%", has no digits in its id part,
//	                    or carries a percentage outside [0,100].
//	ErrBadSharedLines - the shared-lines magnitude is negative.
//	*ParseError       - wraps one of the above with the offending text.
//
// Complexity:
//
//	ParseLabel O(len(label)); NewAdjacency O(E) time and memory.
package core
