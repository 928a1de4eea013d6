// Package networth provides the deterministic financial engine behind the
// `nwc` command-line tool: it projects a household's net worth under
// competing economic assumptions and reconciles several independent analyses
// into a single consensus report.
//
// The core functionalities include:
//   - Amortization Math: time-value-of-money primitives, months to pay off a
//     debt and future value of a lump sum plus monthly contributions.
//   - Financial Profile: an immutable description of a household (income,
//     expenses, debt, savings) with derived ratios.
//   - Projection Engine: a month-by-month simulator that allocates the monthly
//     surplus between investments and debt according to a Strategy.
//   - Health Scoring: a five-dimension 0-100 rubric with a weighted overall.
//   - Retirement Solver: the first age at which savings reach the FIRE number.
//   - Consensus Aggregation: mean, range and coefficient of variation across
//     analyses produced with different assumption sets.
//
// Every function of this package is pure: it performs no I/O, holds no shared
// state and returns bit-identical results for identical inputs. Analyses can
// therefore be computed in any order, or in parallel, without coordination.
package networth
