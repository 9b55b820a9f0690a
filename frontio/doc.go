// Package frontio reads and writes fronts in the plain-text WFG format.
//
// A file holds one or more fronts. Every point is one line of objective
// values separated by whitespace or commas, and fronts are separated by
// lines starting with '#':
//
//	#
//	1 5
//	3 3
//	5 1
//	#
//	2,2,2
//	#
//
// Blank lines are ignored. All points of a front must have the same number
// of objectives.
//
// Readers detect gzip, zstd and lz4 frame compression from the leading
// magic bytes and decompress transparently.
package frontio
