// Package unify shows two independently defined error representations
// flowing into one reporting path. ComputeWithLocalError fails with the
// application's own LocalError; ComputeWithLibraryError fails with a goerr
// library error and converts a batch of LocalError results into that same
// representation so a single loop can report all of them.
package unify
