// Package otp implements the on-time-performance aggregation engine.
//
// The package operates on an in-memory Table of flight records and exposes
// a fixed set of pure, stateless transforms: delay-rate breakdowns by
// dimension, cancellation distributions, relative-delay indices, delayed
// route rankings, hourly delay patterns, regional volume summaries, and
// arrival-point distributions. No function mutates its input table, so a
// filtered table can be shared read-only by any number of aggregators.
//
// Rows with status "cancelled" or "diverted" carry no meaningful departure
// delay; every delay-based aggregator excludes them before computing any
// statistic. The on-time boundary is a departure delay under 15 minutes,
// and a route-level "material" delay is anything over 60 minutes.
package otp
