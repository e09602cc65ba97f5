// Package workspace lays out and writes a rendered document on disk.
//
// Two layouts are supported:
//
//	flat:    {root}/{title}.tex
//	project: {root}/{title}/document/{title}.tex
//	         {root}/{title}/document/figure/sample.png
//	         {root}/{title}/notebook/{title}.ipynb
//
// The primary document is never overwritten: Materialize returns an error
// wrapping ErrAlreadyExists when it is present. Auxiliary files are written
// only when absent.
package workspace
