// Package file persists the current snapshot and the historical series
// as whole-file JSON blobs in the data directory. Every save is a full
// overwrite; there is no in-process locking, so overlapping writers are
// last-writer-wins on the whole file.
package file
