// Package snapshot persists the set of resting orders so that boot
// can load a recent snapshot and replay only the WAL tail after it.
// A snapshot is captured under the engine lock and therefore always
// represents an uncrossed, consistent book.
package snapshot
