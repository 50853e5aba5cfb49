// Package parking solves the parking problem: cars on a grid map drive
// simultaneously, one cell per time unit, around walls; cars and slots do
// not block each other. What is the least time after which every car can
// stand on its own parking slot?
//
// Each car gets a breadth-first step distance to every slot. For a trial
// time T the network is a bipartite matching graph:
//
//	source ─1→ car ─1→ slot ─1→ sink      (car→slot only when distance ≤ T)
//
// T is enough iff the max flow equals the number of cars. More time never
// removes an edge, so threshold.LeastFeasible finds the answer over
// [0, MaxDistance]. No cars ⇒ 0; an impossible map ⇒ -1.
//
// Input format (instances repeat until end of input):
//
//	R C
//	R words of C symbols: '.' road, 'C' car, 'P' slot, 'X' wall
package parking
