// Package rebalance allocates a fixed amount of fresh cash across the
// positions of an existing portfolio so that the resulting allocation by
// asset class lands as close as possible to a set of target percentages.
//
// The core functionalities include:
//   - Classification Policy: an injected mapping from ticker symbols to
//     asset classes, and from asset classes to target percentages. The
//     default policy covers a seven-class ETF universe; alternate policies
//     can be loaded from a YAML file.
//   - Portfolio Model: assets (symbol, price, share count, class) grouped
//     into a portfolio with a cached total value, per-class allocation
//     percentages and a deviation-from-target score.
//   - Greedy Allocator: a single-share hill climb that repeatedly buys the
//     one share that most reduces the deviation score, and stops on the
//     last state that does not overspend the cash budget.
//   - Positions Import: reading raw position records from broker exports
//     (Excel sheet, CSV, or JSON).
//
// This package serves as the foundational logic for the `rbl` command-line
// tool. It performs no I/O of its own beyond the explicit import helpers:
// the allocator is a pure in-process computation over in-memory records.
package rebalance
