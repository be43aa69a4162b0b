// SPDX-License-Identifier: MIT

// Package report renders search results and heuristic audits as text.
//
// The layout follows the classic trace of an informed search: a heading per
// strategy, one "Expanding:" line per popped city, one "  -> " line per
// generated neighbour, then either the path with its total distance or an
// explicit "No path found". Greedy lines show h only; A* lines show g, h and f.
//
// Colour is opt-in through WithColor; Colorable decides it for a writer the
// same way most terminal tools do (TTY check via go-isatty, NO_COLOR, CLICOLOR).
package report
