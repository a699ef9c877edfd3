// Package lvlath is your in-memory playground for stepwise heuristic search:
// a generic A* engine you can drive one expansion at a time, plus ready-made
// state spaces to run it on.
//
// 🚀 What is in lvlath?
//
//	A modern, allocation-aware search toolkit that brings together:
//		• astar:         generic A* engine with Initialize / Step / RunFor / Cancel
//		• astar/metrics: Prometheus counters and histograms fed by engine hooks
//		• roadmap:       immutable directed road tables loaded from YAML
//		• gridgraph:     weighted 2D grids with 4- or 8-connectivity
//		• trace:         console rendering of every search step
//
// ✨ Why choose lvlath?
//
//   - Stepwise – inspect the frontier and the expanded set between steps
//   - Accounted – every node is tracked; Stats() tells you what is still live
//   - Bounded – WithMaxNodes turns runaway searches into a clean failure
//   - Extensible – hooks (OnExpand, OnRelax, OnFinish) and slog logging
//
// Under the hood, everything is organized under these subpackages:
//
//	astar/      — engine, node arena, open/closed sets, solution cursors
//	astar/metrics/ — Prometheus recorder
//	roadmap/    — Table, City state, embedded Romania map, exact distances
//	gridgraph/  — GridGraph, Cell state, connected regions
//	trace/      — Printer
//	cmd/astar/  — command-line driver
//
// Quick ASCII example:
//
//	    A─1─B
//	    │   │
//	    4   1
//	    │   │
//	    C─1─D
//
//	A* from A to D expands A and B and returns A → B → D at cost 2.
//
//	go get github.com/katalvlaran/lvlath/astar
package lvlath
