// Package scheduler drives the periodic execution of the integration pipeline.
//
// It wraps a cron runner with two behaviors the pipeline relies on:
//
//   - An optional immediate run at startup, before the first interval elapses.
//   - Overlap protection: a tick that fires while the previous run is still
//     in flight is skipped with a warning instead of starting a second run.
//
// The pipeline core assumes at most one run is active at a time; that
// precondition is enforced here, at the edge, not inside the core.
package scheduler
