// Package flownet is an in-memory toolkit for modeling capacitated flow
// networks and computing maximum flow / minimum cut on them.
//
// 🚀 What is flownet?
//
//	A small, zero-dependency library built around three subpackages:
//		• core/    — the mutable Graph model: nodes with source/sink roles,
//		  capacitated edges with live flow values, ordered adjacency
//		• flow/    — residual-graph construction, BFS augmenting-path
//		  search and the Edmonds–Karp max-flow solver with min-cut extraction
//		• network/ — a single-source/single-sink facade: validation,
//		  capacity updates, flow reset and network summaries
//
// ✨ Why choose flownet?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – adjacency order decides path tie-breaks, so repeated
//     runs on the same network produce identical per-edge flows
//   - Pure Go – no cgo, no hidden deps
//   - Editable between runs – add/remove nodes and edges, adjust
//     capacities, reset flows, recompute
//
// Quick ASCII example:
//
//	    s ──10──▶ A ──5──▶ t
//
//	a single bottleneck chain whose maximum flow is 5.
//
// The model is single-writer: wrap a network in your own lock if several
// goroutines mutate it. See each subpackage's doc.go for details.
//
//	go get github.com/katalvlaran/flownet
package flownet
