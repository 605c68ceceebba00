// Package pipeline orchestrates the batch: file discovery, concurrent
// probe-and-write dispatch, progress reporting, the post-run sort, and
// summary output.
//
// Shared state for one run lives in RunState with independent exclusion
// domains per resource (counters, timings, failures); the database stream
// and the console carry their own locks. Workers never wait on each other,
// and one file's failure never cancels the pool.
package pipeline
