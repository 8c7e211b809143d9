// Package resilience retries transient failures and bounds concurrency.
//
//   - Retry re-runs an operation with exponential backoff while RetryIf
//     accepts its error.
//   - Bulkhead limits how many operations run at once.
//
// The process package uses Retry around process creation, where the kernel
// may transiently refuse a fork or exec, and a Bulkhead to cap the number of
// children running at the same time.
package resilience
