// Package tracing records OpenTelemetry spans for a review run: one span for
// the run, one for loading the document and one per report section. Tracing
// is off until Init is called; spans started before that are no-ops.
package tracing
