// Package gt answers structural and optimization questions over weighted
// network graphs: shortest paths with bottleneck identification, SLO
// evaluation, what-if topology simulation, minimum spanning trees, and
// critical-component detection.
//
// 🚀 What is gt?
//
//	A small, deterministic graph-analysis toolkit built around an immutable
//	graph snapshot:
//		• core/     — generic graph model with exhaustive build-time validation
//		• dijkstra/ — shortest paths + bottleneck edge (lazy-decrease-key heap)
//		• slo/      — latency objective verdicts over shortest paths
//		• simulate/ — edge drops & weight overrides, before/after comparison
//		• mst/      — Kruskal over a union-find arena, forest-aware
//		• critical/ — bridges & articulation points, iterative Tarjan low-link
//
// Every algorithm is a pure function of a *core.Graph value: no shared
// state, no mutation, deterministic output for a fixed input order — so
// independent queries parallelize trivially at the caller's discretion.
//
// Two thin CLIs ship with the engine:
//
//	cmd/gt-path    — path / slo / simulate over directed JSON graphs
//	cmd/gt-connect — mst / critical / analyze over undirected CSV graphs
//
// Quick ASCII example:
//
//	    api ──5── auth
//	     │          │
//	     7          3
//	     │          │
//	   cache ──2── db
//
//	shortest_path(api, db) = api → auth → db, total 8, bottleneck api→auth.
//
//	go get github.com/pathwise/gt
package gt
