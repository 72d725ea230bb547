// Package entry implements the command write-ahead log. Every
// place/cancel intent is appended before the book mutates, so the
// book can always be rebuilt by replaying the log in sequence order.
//
// Records are framed as
//
//	[type:1][seq:8][time:8][len:4][payload][crc:4]
//
// across size-rotated segment files. Segments whose records are all
// covered by a snapshot are truncated away.
package entry
