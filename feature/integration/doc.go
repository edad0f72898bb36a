// Package integration implements the HR reconciliation pipeline.
//
// One run fetches the full colaborador data set from the remote API, validates
// each record, and reconciles it into the relational store through three
// sequential upserts: company, cost center, then the employee row referencing
// both. Outcomes are folded into a RunReport which is handed to the report
// sink when the run finishes.
//
// # Failure isolation
//
// A record that fails validation or storage is recorded in the report and the
// run moves on; a single record can never abort the batch. The only fatal path
// is the source fetch exhausting its retries, which is surfaced to the caller
// after the (single-error) report has been handed off.
//
// # Components
//
//   - source: retrying HTTP client for the data provider.
//   - validate: pure per-record checks (CPF check digits, cost center presence).
//   - store: transactional upserts keyed by business identifiers.
//   - Service: orchestrates one run end to end.
//   - Handler: exposes POST /integration/run to trigger a run out of band.
//
// # Concurrency
//
// Records are processed strictly sequentially within a run, and the service
// assumes at most one run is in flight at a time. That is a documented
// precondition on the callers (core/scheduler skips overlapping ticks), not
// something the service enforces with a lock.
package integration
