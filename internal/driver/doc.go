// Package driver sequences the sample's two utilities.
//
// A run sums two fixed sequences and displays both results with a single call:
//
//	sum([1, 2, 3, 4, 5])        -> 15
//	sum([55, 66, 77, 88, 99])   -> 385
//	show(15, 385)
//
// which writes "15\n385\n" to the configured output. Every step is timed with
// the injected clock, counted in the metrics recorder and appended to the
// returned report. Logging goes through the logr.Logger carried by the context.
package driver
