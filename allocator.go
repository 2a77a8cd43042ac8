package rebalance

import (
	"fmt"
	"math"
	"slices"
)

// maxRebalanceSteps bounds the greedy loop. The loop terminates on its own
// because every step consumes strictly positive cash, but a guard turns a
// broken precondition into an error instead of a hang.
const maxRebalanceSteps = 1 << 20

// Rebalance allocates a cash budget across the positions already held in
// the starting portfolio, one whole share at a time.
//
// It is a local greedy hill climb: each step evaluates, for every held
// symbol, a hypothetical copy of the working state with exactly one more
// share of that symbol, ranks the candidates by deviation score, and commits
// to the best one. Ties on the 3-decimal score go to the lexicographically
// smallest symbol. Earlier purchases are never reconsidered.
//
// The budget check is aggregate, not per step: a step may overspend the
// remaining cash, but then it is the last step taken and its state is
// discarded. The returned portfolio is always the last state whose
// cumulative cost stayed within budget; the starting portfolio is never
// mutated.
//
// Preconditions: the portfolio must hold at least one asset and every asset
// must have a strictly positive price, otherwise a zero-cost step would
// spin the loop forever.
func Rebalance(start *Portfolio, budget Money) (*Portfolio, error) {
	symbols := make([]string, 0)
	for a := range start.Assets() {
		if !a.Price().IsPositive() {
			return nil, fmt.Errorf("%w: %s at %s", ErrNonPositivePrice, a.Symbol(), a.Price())
		}
		symbols = append(symbols, a.Symbol())
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("cannot rebalance: %w", ErrZeroTotalValue)
	}
	// sorted symbols make the tie-break rule: first strict improvement wins,
	// so equal scores resolve to the smallest symbol.
	slices.Sort(symbols)

	working := start.Clone()
	previous := working
	cash := budget

	for steps := 0; cash.IsPositive(); steps++ {
		if steps >= maxRebalanceSteps {
			return nil, fmt.Errorf("%w after %d steps", ErrStalled, steps)
		}

		var best *Portfolio
		bestScore := math.Inf(1)
		for _, symbol := range symbols {
			candidate := working.Clone()
			if err := candidate.Buy(symbol, 1); err != nil {
				return nil, err
			}
			score, err := candidate.Deviation()
			if err != nil {
				return nil, err
			}
			if score < bestScore {
				best, bestScore = candidate, score
			}
		}

		cost := best.TotalValue().Sub(working.TotalValue())
		if !cost.IsPositive() {
			return nil, fmt.Errorf("%w: step cost %s", ErrStalled, cost)
		}
		cash = cash.Sub(cost)
		previous, working = working, best
	}

	// the step that crossed zero is discarded: do not overspend.
	return previous, nil
}
