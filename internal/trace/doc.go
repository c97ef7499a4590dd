// Package trace records what the formatter does: a span per fmt run, per
// file and per pipeline phase, instant points for trivia anomalies and, at
// debug level, one point per top-level declaration the printer writes.
//
//	cstyle fmt --trace=- --trace-level=detail src/
//	cstyle fmt --trace=run.ndjson --trace-mode=ring src/
//
// Levels filter by scope (driver, pass, file, node). Alerts, that is
// failed spans and reinjection anomalies, pass at every level above off,
// so --trace-level=error shows only what went wrong.
//
// Spans are propagated through context:
//
//	sp, ctx := trace.StartSpan(ctx, trace.ScopeFile, "file:"+path)
//	defer sp.End("")
package trace
