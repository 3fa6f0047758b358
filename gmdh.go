// Package gmdh fits and evaluates Group Method of Data Handling (GMDH)
// inductive regression models: COMBI, MULTI, MIA and RIA. Each family
// searches a space of partial polynomials organized in layers, keeping at
// every layer the subset of candidates that scores best under an external
// criterion, and composes the survivors into a predictor.
package gmdh

// Verbose controls whether Fit prints a per-layer progress line.
// Individual fits can override this with WithVerbose.
var Verbose = false
