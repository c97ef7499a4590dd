// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostics are data: the extractor, lexer, parser, printer and reinjector
// report them through a Reporter, the driver collects them in a Bag, and the
// CLI renders them. Nothing in this package performs IO except Render, which
// writes to a caller supplied io.Writer.
//
// Codes are grouped by phase:
//
//   - LEX (1000–1999): lexical errors in clean text;
//   - SYN (2000–2999): parse errors;
//   - TRV (3000–3999): trivia extraction and reinjection;
//   - FMT (4000–4999): tree printer coverage and limits;
//   - IO  (5000–5999): file system and external tools.
package diag
