// Package diag defines the diagnostic model shared by the lexer, parser,
// and rule engine: severities, stable rule codes, suggested fixes, the
// Reporter contract, and the Bag aggregator with deterministic ordering.
package diag
