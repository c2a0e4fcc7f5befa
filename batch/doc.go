// SPDX-License-Identifier: MIT

// Package batch solves independent instances in parallel and aggregates
// their rewards.
//
// Each instance runs its own single-threaded engine on a worker drawn from
// an errgroup with a concurrency limit; instances share nothing but
// read-only inputs. Outcomes come back in input order whatever the
// completion order. The first failing instance cancels the rest of the
// batch: instances not yet started are skipped, running ones finish.
//
// Every batch gets a short run id (google/uuid) attached to all of its log
// records; per-instance engine statistics are forwarded to an optional
// metrics.Recorder.
//
// Aggregations:
//
//	Sum        Σ reward
//	Product    Π reward (1 for an empty batch)
//	QualitySum Σ id × reward
package batch
