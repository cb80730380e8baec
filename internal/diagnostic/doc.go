// Package diagnostic provides structured errors and warnings for
// schema declaration validation.
//
// Key capabilities:
//   - Per-finding codes for programmatic matching
//   - Shape-tree paths pinpointing the offending node
//   - Aggregation into a single error for callers that want one
package diagnostic
