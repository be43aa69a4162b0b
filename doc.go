// Package roadsearch finds routes between cities on a weighted road network
// using Greedy Best-First Search and A*.
//
// What is in the box?
//
//	A small, deterministic search toolkit:
//		• Road networks: undirected cities and roads with straight-line estimates
//		• Loading: the classic "A B Distance" / "Straight line" text format and YAML
//		• Search: Greedy Best-First and A* driven step by step or to completion
//		• Checking: heuristic audits and Dijkstra reference distances
//		• Reporting: the expansion trace and the final route, coloured on a terminal
//
// Packages:
//
//	core/      - Graph, City, Road and the heuristic table
//	arena/     - bounded per-run node store with parent links
//	frontier/  - min-priority queue (heap or linear scan) with FIFO tie-break
//	search/    - Stepper, Run, RunGreedy, RunAStar
//	dijkstra/  - exact single-source distances for cross-checking
//	heuristic/ - admissibility and consistency audit
//	builder/   - synthetic networks (path, grid, random) for tests and demos
//	loader/    - text and YAML parsing
//	config/    - YAML, dotenv and ROADSEARCH_* settings
//	report/    - terminal output
//	cmd/roadsearch - the CLI
//
// Quick example:
//
//	  Oviedo ──121── Leon ──139── Valladolid
//	  h=211         h=126         h=0
//
//	A* from Oviedo expands Oviedo, Leon, Valladolid and reports 260 km.
//
//	go run ./cmd/roadsearch data/spain.txt --start Malaga --goal Valladolid
package roadsearch
