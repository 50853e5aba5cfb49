// Package judgeflow solves competitive-programming problems whose answer is
// the extreme parameter at which a flow network saturates.
//
// What is inside?
//
//	flow/      - Edmonds–Karp over a dense capacity matrix behind the Network interface
//	threshold/ - generic monotone binary search plus the "build, run, compare" glue
//	gridgraph/ - character grids: passability, BFS distances, connected regions
//	party/     - dancing party: greatest number of rounds
//	parking/   - parking lot: least time for every car to reach a slot
//	judge/     - token scanner, Problem interface, registry, raw max-flow problem
//	config/    - file, environment and flag settings (viper + validator)
//	cli/       - the judgeflow command tree (cobra + zap)
//
// Every trial builds its own network: the engine consumes capacities into
// residuals, so nothing is reused between probes.
//
// Quick start:
//
//	judgeflow solve party < party.in
//	judgeflow solve parking -i lots.txt
//	judgeflow list
package judgeflow
