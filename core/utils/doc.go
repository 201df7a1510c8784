// Package utils provides value conversion helpers shared by the search and
// record packages. Values arrive as decoded JSON (float64, string, bool) and
// are converted to the kind a column expects.
package utils
