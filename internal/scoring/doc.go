// Package scoring implements the lead scoring core: data-driven rule tables,
// per-category evaluation, weighted aggregation into a 0-100 score,
// qualification tiers, deterministic recommendations and a bounded-concurrency
// batch runner. The package is pure computation with no I/O beyond reading
// model files, which keeps it trivially testable and safe to run anywhere.
package scoring
