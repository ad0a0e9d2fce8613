// Package libdiff renders differences between the textual forms of values
// for failure reports. It is a thin layer over
// github.com/sergi/go-diff/diffmatchpatch.
package libdiff
