// Package party solves the dancing-party problem: n boys and n girls dance
// in rounds, every round pairs each boy with a distinct girl, no couple
// dances twice, and each dancer tolerates at most k partners they do not
// like. How many rounds can the party last?
//
// The answer is the greatest r for which a 4-layer flow network saturates:
//
//	source ─r→ boy i ─1→ girl j ─r→ sink                (i likes j)
//	boy i ─k→ boy'i ─1→ girl'j ─k→ girl j               (i does not like j)
//
// where boy'/girl' are the "unfavoured" copies capping dislikes at k. r
// rounds are possible iff the max flow equals n·r; the predicate is
// monotone in r, so threshold.FindThreshold finds the answer over [0, n].
//
// Input format (one instance):
//
//	n k
//	n words of n symbols over {Y, N}; row = boy, column = girl
package party
