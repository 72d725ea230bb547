// Package service orchestrates the core components of the matching
// engine: the order book, the command WAL, the trade outbox, and the
// memory pool.
//
// Engine is the single write entry point. One mutex spans every
// submit, cancel, and amend call end to end, which keeps the book
// itself strictly single-threaded and every operation atomic from the
// caller's point of view.
package service
